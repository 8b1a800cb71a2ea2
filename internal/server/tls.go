package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync/atomic"
	"time"

	"caesar/internal/ctxlog"
)

// certLoader keeps the served certificate in sync with the files on disk,
// so renewed certificates are picked up without a restart.
type certLoader struct {
	certFile string
	keyFile  string
	interval time.Duration

	cert atomic.Pointer[tls.Certificate]
}

func newCertLoader(certFile, keyFile string, interval time.Duration) (*certLoader, error) {
	l := &certLoader{
		certFile: certFile,
		keyFile:  keyFile,
		interval: interval,
	}

	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *certLoader) load() error {
	c, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return fmt.Errorf("load tls cert: %w", err)
	}

	l.cert.Store(&c)
	return nil
}

func (l *certLoader) tlsConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		GetCertificate: func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
			return l.cert.Load(), nil
		},
	}
}

func (l *certLoader) reloadLoop(ctx context.Context) {
	if l.interval <= 0 {
		return
	}

	logger := ctxlog.Get(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			err := l.load()
			if err != nil {
				logger.Error("reload tls cert", "error", err)
			} else {
				logger.Info("reloaded tls cert")
			}
		}
	}
}
