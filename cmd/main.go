package main

import (
	"log/slog"
	"os"
)

func main() {
	// Configure logger; stdout is reserved for the report
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := newRootCmd(os.Stdout, level).Execute(); err != nil {
		slog.Error("task report failed", "error", err)
		os.Exit(1)
	}
}
