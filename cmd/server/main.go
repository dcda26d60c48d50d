package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/scrapriq/dashboard/internal/server"
)

func main() {
	s, err := server.NewFromEnv()
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	s.RegisterRoutes()
	if err := s.InitModules(context.Background()); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
