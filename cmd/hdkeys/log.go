package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w. Secrets are never passed to it.
func newLogger(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("component", "hdkeys").
		Logger()
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
