package normalize

import (
	"github.com/indigo-web/netserver/http"
	"github.com/indigo-web/netserver/http/proto"
)

// Request normalizes the whole raw request.
func Request(raw http.RawRequest) *http.Request {
	return &http.Request{
		Method:  raw.Method,
		Target:  raw.Target,
		URI:     URI(raw.URI),
		Version: raw.Version,
		Proto:   proto.FromVersion(raw.Version),
		Headers: Headers(raw.Headers),
	}
}
