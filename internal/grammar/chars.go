package grammar

const (
	alpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digit      = "0123456789"
	hexdig     = digit + "abcdefABCDEF"
	unreserved = alpha + digit + "-._~"
	subDelims  = "!$&'()*+,;="
)

type charset [256]bool

func newCharset(groups ...string) (set charset) {
	for _, group := range groups {
		for i := 0; i < len(group); i++ {
			set[group[i]] = true
		}
	}

	return set
}

var (
	// '%' is left out of every set. Percent-encodings are checked separately.
	pathChars   = newCharset(unreserved, subDelims, ":@/")
	queryChars  = newCharset(unreserved, subDelims, ":@/?")
	regNameChar = newCharset(unreserved, subDelims)
	ipLiteral   = newCharset(hexdig, ":.")
	schemeChars = newCharset(alpha, digit, "+-.")
	alphaChars  = newCharset(alpha)
	hexChars    = newCharset(hexdig)
	digitChars  = newCharset(digit)
)

// validate checks whether every character of str either belongs to the set or is
// a part of a valid percent-encoded octet (when pct is set). Returns the index
// of the first violating character, or -1.
func validate(str string, set *charset, pct bool) int {
	for i := 0; i < len(str); i++ {
		switch c := str[i]; {
		case set[c]:
		case c == '%' && pct:
			if i+2 >= len(str) || !hexChars[str[i+1]] || !hexChars[str[i+2]] {
				return i
			}

			i += 2
		default:
			return i
		}
	}

	return -1
}
