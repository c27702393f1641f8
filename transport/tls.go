package transport

import (
	"crypto/tls"
	"net"
)

type TLS struct {
	cfg *tls.Config
	TCP
}

// NewTLS returns a transport serving TLS connections. The config must either carry
// certificates or provide GetCertificate.
func NewTLS(cfg *tls.Config) *TLS {
	return &TLS{
		cfg: cfg,
		TCP: newTCP(nil),
	}
}

func (t *TLS) Bind(addr string) error {
	tcp, err := bindTCP(addr)
	if err != nil {
		return err
	}

	l := tls.NewListener(tcp, t.cfg)
	t.TCP = newTCP(tlsAdapter{tcp, l})

	return nil
}

type tlsAdapter struct {
	*net.TCPListener
	tls net.Listener
}

func (t tlsAdapter) Accept() (net.Conn, error) {
	return t.tls.Accept()
}
