package serve

import (
	"net"

	"github.com/indigo-web/netserver/config"
	"github.com/indigo-web/netserver/internal/dispatch"
	"github.com/indigo-web/netserver/transport"
)

// HTTP1 serves a single request of the connection. Closing the connection is up to the
// transport, once the call returns.
func HTTP1(cfg *config.Config, conn net.Conn, d *dispatch.Dispatcher) bool {
	client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
	return d.Serve(client)
}
