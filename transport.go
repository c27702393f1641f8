package netserver

import (
	"crypto/tls"

	"github.com/indigo-web/netserver/errors"
	"github.com/indigo-web/netserver/obs"
	"github.com/indigo-web/netserver/transport"
)

// Transport describes how the bound address is listened. Constructing one never fails:
// errors, like unreadable certificate files, are deferred and returned from App.Serve.
type Transport struct {
	build func(addr string, logger obs.Logger) (transport.Transport, error)
}

func (t Transport) construct(addr string, logger obs.Logger) (transport.Transport, error) {
	if t.build == nil {
		return transport.NewTCP(), nil
	}

	return t.build(addr, logger)
}

func TCP() Transport {
	return Transport{
		build: func(string, obs.Logger) (transport.Transport, error) {
			return transport.NewTCP(), nil
		},
	}
}

// TLS loads the certificate from the files and serves HTTPS with it.
func TLS(cert, key string) Transport {
	c, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		return failed(err)
	}

	return HTTPS(c)
}

func HTTPS(certs ...tls.Certificate) Transport {
	switch {
	case len(certs) == 0:
		return failed(errors.ErrNoCertificates)
	case !noEmptyCerts(certs):
		return failed(errors.ErrBadCertificate)
	}

	return Transport{
		build: func(string, obs.Logger) (transport.Transport, error) {
			return transport.NewTLS(&tls.Config{Certificates: certs}), nil
		},
	}
}

// Cert loads the certificate from the files. An empty certificate is returned on error,
// which makes HTTPS fail with errors.ErrBadCertificate.
func Cert(cert, key string) tls.Certificate {
	c, _ := tls.LoadX509KeyPair(cert, key)
	return c
}

func failed(err error) Transport {
	return Transport{
		build: func(string, obs.Logger) (transport.Transport, error) {
			return nil, err
		},
	}
}

func noEmptyCerts(certs []tls.Certificate) bool {
	for _, c := range certs {
		if c.Certificate == nil {
			return false
		}
	}

	return true
}
