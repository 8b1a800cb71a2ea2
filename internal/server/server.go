// Package server provides the HTTP API for encoding and decoding texts and managing profiles.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"caesar/internal/ctxlog"
	"caesar/internal/rot"
)

type Server struct {
	addr            string
	handler         http.Handler
	throttle        *throttle
	certs           *certLoader
	shutdownTimeout time.Duration
}

// Defaults fill in encode and decode requests that name no profile.
// A nil Shift makes the shift field required.
type Defaults struct {
	Alphabet rot.Alphabet
	Shift    *int
}

func New(config Config, defaults Defaults) *Server {
	if config.Port == 0 {
		panic("server: port is required")
	}
	if config.ThrottleBuckets == 0 {
		panic("server: throttleBuckets is required")
	}
	if config.ThrottlePeriod == 0 {
		panic("server: throttlePeriod is required")
	}
	if config.ThrottleMaxConcurrent == 0 {
		panic("server: throttleMaxConcurrent is required")
	}
	if config.ShutdownTimeout == 0 {
		panic("server: shutdownTimeout is required")
	}
	if (config.CertFile == "") != (config.KeyFile == "") {
		panic("server: certFile and keyFile must be set together")
	}
	if err := defaults.Alphabet.Validate(); err != nil {
		panic(fmt.Errorf("server: default alphabet: %w", err))
	}

	var certs *certLoader
	if config.CertFile != "" {
		var err error
		certs, err = newCertLoader(config.CertFile, config.KeyFile, config.CertReloadInterval)
		if err != nil {
			panic(fmt.Errorf("server: %w", err))
		}
	}

	thr := newThrottle(config.ThrottleBuckets, config.ThrottlePeriod, config.ThrottleMaxConcurrent, tooManyRequestsHandler())
	adm := newAdmin(config.AdminKey, notFoundHandler())

	a := &api{
		defaults:   defaults,
		batchLimit: config.BatchLimit,
		maxTexts:   config.MaxTexts,
	}

	mux := http.NewServeMux()

	for _, route := range []struct {
		pattern string
		handler http.Handler
	}{
		{"/", notFoundHandler()},
		{"POST /encode", thr.middleware(a.transform(false))},
		{"POST /decode", thr.middleware(a.transform(true))},
		{"GET /profiles", thr.middleware(http.HandlerFunc(a.listProfiles))},
		{"PUT /profiles/{name}", adm.middleware(http.HandlerFunc(a.putProfile))},
		{"DELETE /profiles/{name}", adm.middleware(http.HandlerFunc(a.deleteProfile))},
	} {
		slog.Info("registering handler", "pattern", route.pattern)
		mux.Handle(route.pattern, route.handler)
	}

	handler := http.Handler(mux)
	handler = newRecover(handler, headersMiddleware(internalServerErrorHandler()))
	handler = headersMiddleware(handler)
	handler = hostMiddleware(config.Host, handler)
	handler = logMiddleware(handler)

	return &Server{
		addr:            fmt.Sprintf("0.0.0.0:%d", config.Port),
		handler:         handler,
		throttle:        thr,
		certs:           certs,
		shutdownTimeout: config.ShutdownTimeout,
	}
}

func (s *Server) Run(ctx context.Context) error {
	logger := ctxlog.Get(ctx)

	defer s.throttle.stop()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.certs != nil {
		srv.TLSConfig = s.certs.tlsConfig()
		go s.certs.reloadLoop(ctx)
	}

	serveErrCh := make(chan error, 1)
	go func() {
		defer cancel()
		logger.Info("server is running", "addr", s.addr, "tls", s.certs != nil)

		if s.certs != nil {
			serveErrCh <- srv.ListenAndServeTLS("", "")
			return
		}
		serveErrCh <- srv.ListenAndServe()
	}()

	<-ctx.Done()

	logger.Info("server is shutting down")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer stopCancel()
	shutdownErr := srv.Shutdown(stopCtx)
	if errors.Is(shutdownErr, context.DeadlineExceeded) {
		logger.Error("server shutdown timeout exceeded")
	} else if shutdownErr == nil {
		logger.Info("all clients closed successfully")
	}

	serveErr := <-serveErrCh
	if errors.Is(serveErr, http.ErrServerClosed) {
		serveErr = nil
	}

	return errors.Join(serveErr, shutdownErr)
}
