package address

import (
	"testing"

	"github.com/indigo-web/netserver/config"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	defaults := config.Default().Server

	for _, tc := range []struct {
		addr, want string
	}{
		{"", "localhost:8080"},
		{":9090", "localhost:9090"},
		{"0.0.0.0", "0.0.0.0:8080"},
		{"0.0.0.0:80", "0.0.0.0:80"},
		{"example.com:", "example.com:8080"},
		{"[::1]", "[::1]:8080"},
		{"[::1]:443", "[::1]:443"},
	} {
		require.Equal(t, tc.want, Resolve(tc.addr, defaults), tc.addr)
	}
}

func TestIsLocalhost(t *testing.T) {
	require.True(t, IsLocalhost("localhost:8080"))
	require.True(t, IsLocalhost("LocalHost"))
	require.True(t, IsLocalhost("127.0.0.1:80"))
	require.True(t, IsLocalhost("[::1]:443"))
	require.False(t, IsLocalhost("example.com:443"))
	require.False(t, IsLocalhost("0.0.0.0:80"))
}
