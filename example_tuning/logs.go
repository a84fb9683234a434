package main

import (
	"io"
	"log/slog"
)

func replAttr(_ []string, a slog.Attr) slog.Attr {
	// timestamps are noise on pure arithmetic output
	if a.Key == "time" {
		return slog.Attr{}
	}
	return a
}

// NewLogger creates a new logger with the given options.
func NewLogger(writer io.Writer, level slog.Level) *slog.Logger {
	opts := slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replAttr,
	}
	return slog.New(slog.NewTextHandler(writer, &opts))
}
