package main

import (
	"log/slog"
	"os"

	"github.com/hydrolearn/backend/internal/simulation"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if err := simulation.Run(logger); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}
