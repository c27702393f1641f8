package grammar

import (
	"strconv"
	"strings"

	"github.com/indigo-web/netserver/errors"
	"github.com/indigo-web/netserver/http"
)

const maxPort = 65535

// target parses the request-target. The offset is the target's position in the block
// and is used for error reporting only.
func target(raw string, offset int) (uri http.RawURI, err error) {
	switch {
	case len(raw) == 0:
		return uri, errors.Parse(offset, "empty request target")
	case raw == "*":
		uri.Wildcard = true
		return uri, nil
	case raw[0] == '/':
		return originForm(raw, offset)
	case strings.Contains(raw, "://"):
		return absoluteForm(raw, offset)
	default:
		return authorityForm(raw, offset)
	}
}

// originForm = absolute-path [ "?" query ]
func originForm(raw string, offset int) (uri http.RawURI, err error) {
	uri.Path, uri.Query, err = pathQuery(raw, offset)
	return uri, err
}

// absoluteForm = scheme "://" authority path-abempty [ "?" query ]
func absoluteForm(raw string, offset int) (uri http.RawURI, err error) {
	scheme, rest, _ := strings.Cut(raw, "://")
	if len(scheme) == 0 || !alphaChars[scheme[0]] {
		return uri, errors.Parse(offset, "scheme must begin with a letter")
	}

	if i := validate(scheme, &schemeChars, false); i != -1 {
		return uri, errors.Parse(offset+i, "bad character %q in scheme", scheme[i])
	}

	uri.Scheme = scheme
	offset += len(scheme) + len("://")

	end := strings.IndexAny(rest, "/?")
	if end == -1 {
		end = len(rest)
	}

	uri.Host, uri.Port, err = authority(rest[:end], offset)
	if err != nil {
		return uri, err
	}

	if len(uri.Host) == 0 {
		return uri, errors.Parse(offset, "empty host")
	}

	uri.Path, uri.Query, err = pathQuery(rest[end:], offset+end)
	return uri, err
}

// authorityForm = host ":" port
func authorityForm(raw string, offset int) (uri http.RawURI, err error) {
	uri.Host, uri.Port, err = authority(raw, offset)
	if err != nil {
		return uri, err
	}

	if len(uri.Host) == 0 || len(uri.Port) == 0 {
		return uri, errors.Parse(offset, "authority-form target requires both host and port")
	}

	return uri, nil
}

// authority = host [ ":" port ]. Userinfo is not accepted, neither is port 0.
func authority(raw string, offset int) (host, port string, err error) {
	if i := strings.IndexByte(raw, '@'); i != -1 {
		return "", "", errors.Parse(offset+i, "userinfo is not allowed in request target")
	}

	hostEnd := 0
	if len(raw) > 0 && raw[0] == '[' {
		closing := strings.IndexByte(raw, ']')
		if closing == -1 {
			return "", "", errors.Parse(offset, "unterminated IP literal")
		}

		literal := raw[1:closing]
		if len(literal) == 0 {
			return "", "", errors.Parse(offset, "empty IP literal")
		}

		if i := validate(literal, &ipLiteral, false); i != -1 {
			return "", "", errors.Parse(offset+1+i, "bad character %q in IP literal", literal[i])
		}

		hostEnd = closing + 1
	} else {
		hostEnd = strings.IndexByte(raw, ':')
		if hostEnd == -1 {
			hostEnd = len(raw)
		}

		if i := validate(raw[:hostEnd], &regNameChar, true); i != -1 {
			return "", "", errors.Parse(offset+i, "bad character %q in host", raw[i])
		}
	}

	host, rest := raw[:hostEnd], raw[hostEnd:]
	switch {
	case len(rest) == 0:
		return host, "", nil
	case rest[0] != ':':
		return "", "", errors.Parse(offset+hostEnd, "unexpected %q after host", rest[0])
	}

	port = rest[1:]
	if i := validate(port, &digitChars, false); i != -1 {
		return "", "", errors.Parse(offset+hostEnd+1+i, "bad character %q in port", port[i])
	}

	if len(port) > 0 {
		if value, err := strconv.Atoi(port); err != nil || value == 0 || value > maxPort {
			return "", "", errors.Parse(offset+hostEnd+1, "port %s is out of range", port)
		}
	}

	return host, port, nil
}

// pathQuery = path-abempty [ "?" query ]. Fragments are never a part of a request target.
func pathQuery(raw string, offset int) (path, query string, err error) {
	path, query, hasQuery := strings.Cut(raw, "?")
	if i := validate(path, &pathChars, true); i != -1 {
		return "", "", errors.Parse(offset+i, "bad character %q in path", path[i])
	}

	if hasQuery {
		if i := validate(query, &queryChars, true); i != -1 {
			return "", "", errors.Parse(offset+len(path)+1+i, "bad character %q in query", query[i])
		}
	}

	return path, query, nil
}
