package netserver

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/indigo-web/netserver/internal/address"
	"github.com/indigo-web/netserver/obs"
	"github.com/indigo-web/netserver/transport"
	"golang.org/x/crypto/acme/autocert"
)

const cacheBase = "netserver-autocert"

// AutoHTTPS obtains certificates for the domains from Let's Encrypt. If no domains are
// given, any requested host is allowed. Local addresses get a self-signed certificate
// instead, generated once and kept in the cache directory.
func AutoHTTPS(domains ...string) Transport {
	return Transport{
		build: func(addr string, logger obs.Logger) (transport.Transport, error) {
			if address.IsLocalhost(addr) {
				cert, key, err := selfSigned(cacheDir())
				if err != nil {
					return nil, err
				}

				return TLS(cert, key).construct(addr, logger)
			}

			return transport.NewTLS(autocertConfig(logger, domains)), nil
		},
	}
}

func autocertConfig(logger obs.Logger, domains []string) *tls.Config {
	m := &autocert.Manager{
		Prompt: autocert.AcceptTOS,
	}

	if len(domains) > 0 {
		m.HostPolicy = autocert.HostWhitelist(domains...)
	}

	cache := cacheDir()
	if err := os.MkdirAll(cache, 0700); err != nil {
		logger.Logf(obs.Warn, "auto https: not using a cache: %s", err)
	} else {
		m.Cache = autocert.DirCache(cache)
	}

	return m.TLSConfig()
}

func cacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, cacheBase)
	}

	return filepath.Join(os.TempDir(), cacheBase)
}

// selfSigned returns paths to the certificate and the key for localhost, generating them
// if they don't exist yet.
func selfSigned(dir string) (cert, key string, err error) {
	cert, key = filepath.Join(dir, "localhost.crt"), filepath.Join(dir, "localhost.key")
	if isFile(cert) && isFile(key) {
		return cert, key, nil
	}

	if err = os.MkdirAll(dir, 0700); err != nil {
		return "", "", err
	}

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          big.NewInt(now.UnixNano()),
		Subject:               pkix.Name{Organization: []string{"Localhost"}},
		DNSNames:              []string{"localhost"},
		NotBefore:             now,
		NotAfter:              now.AddDate(10, 0, 0),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return "", "", err
	}

	privBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", "", err
	}

	if err = writePEM(cert, "CERTIFICATE", der); err != nil {
		return "", "", err
	}

	if err = writePEM(key, "PRIVATE KEY", privBytes); err != nil {
		return "", "", err
	}

	return cert, key, nil
}

func writePEM(filename, blockType string, data []byte) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err = pem.Encode(file, &pem.Block{Type: blockType, Bytes: data}); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func isFile(filename string) bool {
	stat, err := os.Stat(filename)
	return err == nil && !stat.IsDir()
}
