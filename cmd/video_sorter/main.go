package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type loggerKey struct{}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(
		context.WithValue(context.Background(), loggerKey{}, log),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := cmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "video_sorter stopped: %v\n", err)
		os.Exit(1)
	}
}

// logLevel parses names like "info" or "DEBUG"; anything else means debug.
func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelDebug
	}

	return level
}
