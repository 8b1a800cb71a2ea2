package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"caesar/internal/config"
	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"caesar/internal/rec"
	"caesar/internal/server"
)

func run(ctx context.Context, c config.Config) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	logger.Info("opening db")
	db.Open(c.DB)
	defer ctxlog.Close(ctx, "db", db.Closer())

	logger.Info("starting server", "alphabet", c.Alphabet().String())
	srv := server.New(c.Server, c.Defaults())

	return srv.Run(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	filename := "config.yaml"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	c, err := config.Load(ctx, filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx = ctxlog.Setup(ctx, "caesard", c.LogDir)

	logger := ctxlog.Get(ctx)

	err = run(ctx, c)
	if err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
