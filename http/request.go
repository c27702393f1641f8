package http

import (
	"github.com/indigo-web/netserver/http/proto"
)

// Header is a single header line in the order it appeared on the wire.
type Header struct {
	Name, Value string
}

// RawURI is the request-target as parsed from the wire. Empty strings stand for absent
// components.
type RawURI struct {
	// Wildcard is set for the asterisk-form (*) target. All the other fields are empty
	// then.
	Wildcard bool
	Scheme   string
	Host     string
	Port     string
	Path     string
	Query    string
}

// RawRequest is the parsed but not yet normalized request line and headers.
type RawRequest struct {
	Method  string
	// Target is the request-target as it was received.
	Target  string
	URI     RawURI
	Version string
	// Headers preserve the wire order, duplicates included.
	Headers []Header
}

// URI is the normalized request-target. A wildcard target is normalized into the zero URI.
type URI struct {
	Scheme string `json:"scheme,omitempty"`
	Host   string `json:"host,omitempty"`
	// Port is either explicitly set or inferred from the scheme. Zero means absent.
	Port   int    `json:"port,omitempty"`
	Path   string `json:"path,omitempty"`
	Query  string `json:"query,omitempty"`
}

// Request is the normalized request handed to the Processor. It lives exactly as long as
// the processor call does and is never shared between connections.
type Request struct {
	Method  string         `json:"method"`
	// Target is the request-target exactly as it was received.
	Target  string         `json:"target"`
	URI     URI            `json:"uri"`
	Version string         `json:"version"`
	Proto   proto.Protocol `json:"proto"`
	Headers Headers        `json:"headers"`
}

// IsWildcard reports whether the request was made to the server as a whole, like
// OPTIONS * HTTP/1.1.
func (r *Request) IsWildcard() bool {
	return r.Target == "*"
}
