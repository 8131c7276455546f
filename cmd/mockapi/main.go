package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammedyasars/VoltMate-sub000/internal/config"
	"github.com/muhammedyasars/VoltMate-sub000/internal/mockserver"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadServer()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mockserver.New(cfg, logger)
	if err := mockserver.Start(ctx, cfg, srv.Routes(), logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
