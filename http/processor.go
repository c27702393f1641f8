package http

import (
	"github.com/indigo-web/netserver/transport"
)

// Processor takes over the connection once the request line and headers are parsed. It
// owns everything left on the client: the body, the response and the decision whether
// the connection is worth keeping. One processor serves all the connections at once.
type Processor interface {
	Process(request *Request, client transport.Client)
}

// ProcessorFunc adapts an ordinary function to the Processor interface.
type ProcessorFunc func(request *Request, client transport.Client)

func (p ProcessorFunc) Process(request *Request, client transport.Client) {
	p(request, client)
}

// Callable reports whether the processor can actually be invoked.
func Callable(p Processor) bool {
	switch fn := p.(type) {
	case nil:
		return false
	case ProcessorFunc:
		return fn != nil
	default:
		return true
	}
}
