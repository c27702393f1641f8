package transport

import (
	"net"

	"github.com/indigo-web/netserver/config"
)

// Transport is a listener feeding accepted connections into a callback. The callback is
// called in its own goroutine and the connection is closed right after it returns.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
