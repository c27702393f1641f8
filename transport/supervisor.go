package transport

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/indigo-web/netserver/config"
	"github.com/indigo-web/netserver/obs"
)

// Supervisor runs a number of bound transports at once. As soon as one of them fails,
// all the others are stopped too.
type Supervisor struct {
	stopped *atomic.Bool
	ts      []boundTransport
	stopch  chan struct{}
	done    chan struct{}
	finish  *sync.Once
	logger  obs.Logger
}

func NewSupervisor(logger obs.Logger) Supervisor {
	if logger == nil {
		logger = obs.NopLogger{}
	}

	return Supervisor{
		stopped: new(atomic.Bool),
		stopch:  make(chan struct{}),
		done:    make(chan struct{}),
		finish:  new(sync.Once),
		logger:  logger,
	}
}

// Add binds the transport to the address. If binding fails, all the previously added
// transports are closed.
func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	err := transport.Bind(addr)
	if err != nil {
		s.Close()
		return err
	}

	s.logger.Logf(obs.Info, "bound %s", describe(addr, transport))
	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Addrs returns actual addresses of all the bound transports.
func (s *Supervisor) Addrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(s.ts))
	for _, t := range s.ts {
		addrs = append(addrs, t.t.Addr())
	}

	return addrs
}

// Run listens all the transports and blocks until either one of them returns or Stop
// is called. In the former case, the error of the transport is returned.
func (s *Supervisor) Run(cfg config.NET) error {
	defer s.markDone()

	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error)

	for _, t := range s.ts {
		go func(t boundTransport, ch chan<- error) {
			ch <- t.t.Listen(cfg, t.cb)
		}(t, errch)
	}

	select {
	case err := <-errch:
		s.stop()
		drain(errch, len(s.ts)-1)

		return err
	case <-s.stopch:
		s.stop()
		drain(errch, len(s.ts))

		return nil
	}
}

// Stop stops all the transports and blocks until every served connection is done. If
// Run wasn't called yet, Stop waits for it.
func (s *Supervisor) Stop() {
	select {
	case s.stopch <- struct{}{}:
	case <-s.done:
		return
	}

	<-s.done
}

// Close closes all the added transports without running them. Used when the setting-up
// fails midway.
func (s *Supervisor) Close() {
	for _, t := range s.ts {
		t.t.Close()
	}

	s.markDone()
}

func (s *Supervisor) markDone() {
	s.finish.Do(func() {
		close(s.done)
	})
}

func (s *Supervisor) stop() {
	if s.stopped.Swap(true) {
		return
	}

	for _, t := range s.ts {
		t.t.Stop()
	}

	for _, t := range s.ts {
		t.t.Wait()
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func describe(addr string, t Transport) string {
	if bound := t.Addr(); bound != nil {
		return bound.String()
	}

	return addr
}

func drain(ch <-chan error, n int) {
	for range n {
		<-ch
	}
}
