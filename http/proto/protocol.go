package proto

import "github.com/indigo-web/utils/uf"

type Protocol uint8

const (
	Unknown Protocol = 0
	HTTP10  Protocol = 1 << iota
	HTTP11
	HTTP2

	HTTP1 = HTTP10 | HTTP11
)

// Prefix starts every HTTP-version token.
const Prefix = "HTTP/"

func (p Protocol) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2"
	default:
		return ""
	}
}

func (p Protocol) MarshalText() ([]byte, error) {
	return uf.S2B(p.String()), nil
}

var majorMinorVersionLUT = [10][10]Protocol{
	1: {0: HTTP10, 1: HTTP11},
	2: {0: HTTP2},
}

// FromBytes resolves a whole HTTP-version token, like HTTP/1.1.
func FromBytes(raw []byte) Protocol {
	if len(raw) <= len(Prefix) || uf.B2S(raw[:len(Prefix)]) != Prefix {
		return Unknown
	}

	return FromVersion(uf.B2S(raw[len(Prefix):]))
}

// FromVersion resolves the version part of the token, like 1.1. Versions which are
// well-formed but not known are reported as Unknown.
func FromVersion(version string) Protocol {
	if len(version) != len("x.x") || version[1] != '.' ||
		!isDigit(version[0]) || !isDigit(version[2]) {
		return Unknown
	}

	return Parse(version[0]-'0', version[2]-'0')
}

func Parse(major, minor uint8) Protocol {
	if major > 9 || minor > 9 {
		return Unknown
	}

	return majorMinorVersionLUT[major][minor]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
