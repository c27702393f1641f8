// Package dispatch runs the request pipeline over a single connection: framing, parsing,
// normalization and handing the result to the processor.
package dispatch

import (
	"github.com/indigo-web/netserver/config"
	"github.com/indigo-web/netserver/http"
	"github.com/indigo-web/netserver/internal/framer"
	"github.com/indigo-web/netserver/internal/grammar"
	"github.com/indigo-web/netserver/internal/normalize"
	"github.com/indigo-web/netserver/obs"
	"github.com/indigo-web/netserver/transport"
)

// Dispatcher is shared by all the connections. It holds nothing mutable.
type Dispatcher struct {
	processor http.Processor
	cfg       *config.Config
	logger    obs.Logger
}

func New(processor http.Processor, cfg *config.Config, logger obs.Logger) *Dispatcher {
	if logger == nil {
		logger = obs.NopLogger{}
	}

	return &Dispatcher{
		processor: processor,
		cfg:       cfg,
		logger:    logger,
	}
}

// Serve reads a single request from the client and passes it to the processor. Requests
// failing either framing or parsing are dropped without writing anything, false is
// returned then. The processor is called at most once.
func (d *Dispatcher) Serve(client transport.Client) bool {
	request, err := d.read(client)
	if err != nil {
		d.logger.Logf(obs.Debug, "%s: dropping request: %s", remote(client), err)
		return false
	}

	d.processor.Process(request, client)
	return true
}

func (d *Dispatcher) read(client transport.Client) (*http.Request, error) {
	block, err := framer.Frame(client, d.cfg.Block)
	if err != nil {
		return nil, err
	}

	raw, err := grammar.Parse(block)
	if err != nil {
		return nil, err
	}

	return normalize.Request(raw), nil
}

func remote(client transport.Client) string {
	if addr := client.Remote(); addr != nil {
		return addr.String()
	}

	return "<unknown>"
}
