package normalize

import (
	"strconv"
	"testing"

	"github.com/indigo-web/netserver/http"
	"github.com/indigo-web/netserver/http/proto"
	"github.com/stretchr/testify/require"
)

func TestURI(t *testing.T) {
	t.Run("infer port from scheme", func(t *testing.T) {
		require.Equal(t, 443, URI(http.RawURI{Scheme: "https"}).Port)
		require.Equal(t, 80, URI(http.RawURI{Scheme: "http"}).Port)
		require.Equal(t, 443, URI(http.RawURI{Scheme: "HTTPS"}).Port)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		require.Zero(t, URI(http.RawURI{Scheme: "ftp"}).Port)
	})

	t.Run("port to integer", func(t *testing.T) {
		uri := URI(http.RawURI{Scheme: "http", Port: "80"})
		require.Equal(t, 80, uri.Port)

		uri = URI(http.RawURI{Scheme: "https", Port: "8443"})
		require.Equal(t, 8443, uri.Port)

		uri = URI(http.RawURI{Host: "localhost", Port: "8080"})
		require.Equal(t, 8080, uri.Port)
	})

	t.Run("malformed port is absent", func(t *testing.T) {
		require.Zero(t, URI(http.RawURI{Port: "http"}).Port)
		require.Zero(t, URI(http.RawURI{Port: "70000"}).Port)
		require.Equal(t, 80, URI(http.RawURI{Scheme: "http", Port: "-1"}).Port)
	})

	t.Run("default path", func(t *testing.T) {
		require.Equal(t, "/", URI(http.RawURI{}).Path)
	})

	t.Run("leading slash", func(t *testing.T) {
		require.Equal(t, "/foo", URI(http.RawURI{Path: "foo"}).Path)
		require.Equal(t, "/foo", URI(http.RawURI{Path: "/foo"}).Path)
	})

	t.Run("wildcard", func(t *testing.T) {
		require.Equal(t, http.URI{}, URI(http.RawURI{Wildcard: true}))
	})

	t.Run("other fields are kept", func(t *testing.T) {
		uri := URI(http.RawURI{Scheme: "http", Host: "example.com", Path: "/a", Query: "b=c"})
		require.Equal(t, http.URI{
			Scheme: "http", Host: "example.com", Port: 80, Path: "/a", Query: "b=c",
		}, uri)
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, raw := range []http.RawURI{
			{Scheme: "https"},
			{Scheme: "http", Port: "80", Path: "foo"},
			{Path: "foo", Query: "bar"},
			{},
		} {
			once := URI(raw)
			require.Equal(t, once, URI(backToRaw(once)))
		}
	})
}

func backToRaw(uri http.URI) http.RawURI {
	raw := http.RawURI{
		Scheme: uri.Scheme,
		Host:   uri.Host,
		Path:   uri.Path,
		Query:  uri.Query,
	}

	if uri.Port != 0 {
		raw.Port = strconv.Itoa(uri.Port)
	}

	return raw
}

func TestHeaders(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		headers := Headers([]http.Header{})
		require.NotNil(t, headers)
		require.Empty(t, headers)

		require.NotNil(t, Headers(nil))
	})

	t.Run("unique names", func(t *testing.T) {
		headers := Headers([]http.Header{
			{Name: "Content-Type", Value: "text/html"},
			{Name: "Content-Length", Value: "5"},
		})
		require.Equal(t, http.Headers{
			"Content-Type":   {"text/html"},
			"Content-Length": {"5"},
		}, headers)
		require.False(t, headers.Multi("Content-Type"))
		require.Equal(t, "5", headers.Value("Content-Length"))
	})

	t.Run("duplicate names are grouped", func(t *testing.T) {
		headers := Headers([]http.Header{
			{Name: "Content-Type", Value: "text/html"},
			{Name: "Content-Type", Value: "UTF8"},
		})
		require.Equal(t, http.Headers{
			"Content-Type": {"text/html", "UTF8"},
		}, headers)
		require.True(t, headers.Multi("Content-Type"))
	})

	t.Run("names are not folded", func(t *testing.T) {
		headers := Headers([]http.Header{
			{Name: "Accept", Value: "a"},
			{Name: "accept", Value: "b"},
		})
		require.Len(t, headers, 2)
	})

	t.Run("input is left intact", func(t *testing.T) {
		pairs := []http.Header{
			{Name: "A", Value: "1"},
			{Name: "A", Value: "2"},
		}
		headers := Headers(pairs)
		headers["A"][0] = "changed"
		require.Equal(t, "1", pairs[0].Value)
	})
}

func TestRequest(t *testing.T) {
	request := Request(http.RawRequest{
		Method:  "OPTIONS",
		Target:  "*",
		URI:     http.RawURI{Wildcard: true},
		Version: "1.1",
		Headers: []http.Header{{Name: "Host", Value: "localhost"}},
	})

	require.Equal(t, "OPTIONS", request.Method)
	require.True(t, request.IsWildcard())
	require.Equal(t, http.URI{}, request.URI)
	require.Equal(t, proto.HTTP11, request.Proto)
	require.Equal(t, "localhost", request.Headers.Value("Host"))
}
