// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"context"
	slog "log"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/powercalc/powerd/internal/pkg/build"
	"github.com/powercalc/powerd/internal/pkg/cache"
	"github.com/powercalc/powerd/internal/pkg/config"
)

// PowerServer ties the router to the configured HTTP server.
type PowerServer struct {
	cfg   *config.Config
	cache cache.Cache
	bi    build.Info
}

// NewPowerServer creates the power server service.
func NewPowerServer(cfg *config.Config, c cache.Cache, bi build.Info) *PowerServer {
	return &PowerServer{
		cfg:   cfg,
		cache: c,
		bi:    bi,
	}
}

// Run runs the power server until ctx is cancelled.
func (s *PowerServer) Run(ctx context.Context) error {
	ctx, cn := context.WithCancel(ctx)
	defer cn()

	pt := NewPowerT(&s.cfg.Server, s.cache)
	st := NewStatusT(s.bi)
	router := NewRouter(&s.cfg.Server, pt, st)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runServer(ctx, router, &s.cfg.Server)
	})
	return g.Wait()
}

func diagConn(c net.Conn, s http.ConnState) {
	log.Trace().
		Str("local", c.LocalAddr().String()).
		Str("remote", c.RemoteAddr().String()).
		Str("state", s.String()).
		Msg("connection state change")
}

func runServer(ctx context.Context, handler http.Handler, cfg *config.Server) error {
	addr := cfg.BindAddress()
	rdto := cfg.Timeouts.Read
	wrto := cfg.Timeouts.Write
	mhbz := cfg.MaxHeaderByteSize
	bctx := func(net.Listener) context.Context { return ctx }

	log.Info().
		Str("bind", addr).
		Dur("rdTimeout", rdto).
		Dur("wrTimeout", wrto).
		Msg("server listening")

	server := http.Server{
		Addr:           addr,
		ReadTimeout:    rdto,
		WriteTimeout:   wrto,
		Handler:        handler,
		BaseContext:    bctx,
		ConnState:      diagConn,
		MaxHeaderBytes: mhbz,
		ErrorLog:       errLogger(),
	}

	forceCh := make(chan struct{})
	defer close(forceCh)

	// handler to close server
	go func() {
		select {
		case <-ctx.Done():
			log.Debug().Msg("force server close on ctx.Done()")
			server.Close()
		case <-forceCh:
			log.Debug().Msg("go routine forced closed on exit")
		}
	}()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	defer ln.Close()

	if err := server.Serve(ln); err != nil && err != http.ErrServerClosed && err != context.Canceled {
		return err
	}

	return nil
}

type stubLogger struct {
}

func (s *stubLogger) Write(p []byte) (n int, err error) {
	log.Error().Bytes("msg", p).Send()
	return len(p), nil
}

func errLogger() *slog.Logger {
	stub := &stubLogger{}
	return slog.New(stub, "", 0)
}
