package normalize

import (
	"github.com/indigo-web/netserver/http"
)

// Headers groups the header pairs by exact name. Values of a repeated name are kept in
// the order of appearance. The result never shares memory with the input.
func Headers(pairs []http.Header) http.Headers {
	headers := make(http.Headers, len(pairs))

	for _, pair := range pairs {
		headers[pair.Name] = append(headers[pair.Name], pair.Value)
	}

	return headers
}
