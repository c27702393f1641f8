// Package address completes bind addresses with the configured defaults.
package address

import (
	"net"
	"strconv"
	"strings"

	"github.com/indigo-web/netserver/config"
)

// Resolve fills the host and the port missing in addr with the ones from the config.
// Both "host" and ":port" forms are accepted, as well as an empty string.
func Resolve(addr string, defaults config.Server) string {
	host, port := split(addr)
	if len(host) == 0 {
		host = defaults.Host
	}

	if len(port) == 0 {
		port = strconv.Itoa(int(defaults.Port))
	}

	return net.JoinHostPort(host, port)
}

func IsLocalhost(addr string) bool {
	host, _ := split(addr)
	if strings.EqualFold(host, "localhost") {
		return true
	}

	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func split(addr string) (host, port string) {
	if h, p, err := net.SplitHostPort(addr); err == nil {
		return h, p
	}

	// a bare host, probably an IPv6 one in brackets
	return strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]"), ""
}
