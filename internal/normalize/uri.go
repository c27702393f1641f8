// Package normalize turns the raw request tree into the request handed to processors.
// All the functions are pure: inputs are never modified.
package normalize

import (
	"strconv"

	"github.com/indigo-web/netserver/http"
	"github.com/indigo-web/utils/strcomp"
)

type defaultPort struct {
	scheme string
	port   int
}

var defaultPorts = [...]defaultPort{
	{"http", 80},
	{"https", 443},
}

// URI resolves the derived URI fields. The wildcard becomes the zero URI. Otherwise the
// port is converted into an integer or, if absent, inferred from the scheme; the path
// defaults to / and always begins with a slash.
func URI(raw http.RawURI) http.URI {
	if raw.Wildcard {
		return http.URI{}
	}

	uri := http.URI{
		Scheme: raw.Scheme,
		Host:   raw.Host,
		Port:   port(raw.Port),
		Path:   path(raw.Path),
		Query:  raw.Query,
	}

	if uri.Port == 0 && len(uri.Scheme) > 0 {
		uri.Port = SchemePort(uri.Scheme)
	}

	return uri
}

// SchemePort returns the default port of the scheme, or 0 if the scheme is unknown.
// Schemes are case-insensitive.
func SchemePort(scheme string) int {
	for _, dp := range defaultPorts {
		if strcomp.EqualFold(dp.scheme, scheme) {
			return dp.port
		}
	}

	return 0
}

// port returns 0 for absent and malformed ports alike.
func port(raw string) int {
	if len(raw) == 0 {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 || value > 65535 {
		return 0
	}

	return value
}

func path(raw string) string {
	switch {
	case len(raw) == 0:
		return "/"
	case raw[0] != '/':
		return "/" + raw
	default:
		return raw
	}
}
