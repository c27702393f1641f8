package netserver

import (
	"net"

	"github.com/indigo-web/netserver/config"
	"github.com/indigo-web/netserver/errors"
	"github.com/indigo-web/netserver/http"
	"github.com/indigo-web/netserver/http/serve"
	"github.com/indigo-web/netserver/internal/address"
	"github.com/indigo-web/netserver/internal/dispatch"
	"github.com/indigo-web/netserver/obs"
	"github.com/indigo-web/netserver/transport"
)

// App is the entry point of the server. It binds the transports, accepts connections
// and feeds every one of them through the request pipeline into the processor. All the
// setting-up methods must be called before Serve.
type App struct {
	cfg        *config.Config
	processor  http.Processor
	logger     obs.Logger
	binds      []bind
	hooks      hooks
	supervisor transport.Supervisor
}

// New returns a new App serving requests by the processor. errors.ErrNoProcessor is
// returned if the processor cannot be called.
func New(p http.Processor) (*App, error) {
	a := &App{
		cfg:    config.Default(),
		logger: obs.Default(),
	}
	a.supervisor = transport.NewSupervisor(a.logger)

	return a, a.SetProcessor(p)
}

// Run serves the processor on the address over plain TCP. It blocks until the server
// fails.
func Run(addr string, p http.Processor) error {
	app, err := New(p)
	if err != nil {
		return err
	}

	return app.Bind(addr).Serve()
}

// SetProcessor replaces the processor. Nil processors are rejected with
// errors.ErrNoProcessor, leaving the previous one in place.
func (a *App) SetProcessor(p http.Processor) error {
	if !http.Callable(p) {
		return errors.ErrNoProcessor
	}

	a.processor = p
	return nil
}

// Tune replaces the default config. Nil is ignored.
func (a *App) Tune(cfg *config.Config) *App {
	if cfg != nil {
		a.cfg = cfg
	}

	return a
}

// Logger replaces the default logger, which writes everything starting from obs.Info
// into stderr. Pass obs.NopLogger{} to silence the App completely.
func (a *App) Logger(l obs.Logger) *App {
	if l == nil {
		l = obs.NopLogger{}
	}

	a.logger = l
	a.supervisor = transport.NewSupervisor(l)

	return a
}

// Bind adds transports listening the address. Missing host and port are taken from
// config.Server, so ":80" and "0.0.0.0" are both fine. Plain TCP is used if no
// transports are given.
func (a *App) Bind(addr string, transports ...Transport) *App {
	if len(transports) == 0 {
		transports = []Transport{TCP()}
	}

	for _, t := range transports {
		a.binds = append(a.binds, bind{addr: addr, transport: t})
	}

	return a
}

// OnStart calls the callback at the moment, when all the transports are bound. From
// this point the App is accepting connections.
func (a *App) OnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// OnStop calls the callback at the moment, when all the transports are down. It's
// guaranteed, that at this point no connection is being served.
func (a *App) OnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addrs returns the actual addresses the App listens. The result is meaningful only
// starting from OnStart.
func (a *App) Addrs() []net.Addr {
	return a.supervisor.Addrs()
}

// Serve binds all the transports and serves them until either one of them fails or
// Stop is called. The address from config.Server is bound over TCP, if nothing was
// bound explicitly.
func (a *App) Serve() error {
	if !http.Callable(a.processor) {
		a.supervisor.Close()
		return errors.ErrNoProcessor
	}

	if len(a.binds) == 0 {
		a.Bind("")
	}

	transports := make([]transport.Transport, len(a.binds))
	for i, b := range a.binds {
		t, err := b.transport.construct(address.Resolve(b.addr, a.cfg.Server), a.logger)
		if err != nil {
			a.supervisor.Close()
			return err
		}

		transports[i] = t
	}

	d := dispatch.New(a.processor, a.cfg, a.logger)
	cb := func(conn net.Conn) {
		serve.HTTP1(a.cfg, conn, d)
	}

	for i, b := range a.binds {
		if err := a.supervisor.Add(address.Resolve(b.addr, a.cfg.Server), transports[i], cb); err != nil {
			return err
		}
	}

	a.logger.Logf(obs.Info, "serving %d transport(s)", len(transports))
	callIfNotNil(a.hooks.OnStart)
	err := a.supervisor.Run(a.cfg.NET)
	a.logger.Logf(obs.Info, "stopped")
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections and blocks until the served ones are done.
// Serve returns nil afterwards.
func (a *App) Stop() {
	a.supervisor.Stop()
}

type bind struct {
	addr      string
	transport Transport
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
