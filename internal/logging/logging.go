// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/logging/logging.go
// Summary: Configures the global zerolog logger for texelcon binaries.
// Usage: Called once by cmd/texelcon before the terminal is taken over.
// Notes: tcell owns stdout/stderr while running, so logs always go to a file.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options describes where and how verbosely to log.
type Options struct {
	Level string
	File  string
	// Console, when set, additionally writes human readable output to it.
	Console io.Writer
}

// ParseLevel maps a config/flag string to a zerolog level. Unknown values
// fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Setup installs the global logger and returns the rotating writer so the
// caller can close it on exit.
func Setup(opts Options) (io.Closer, error) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))

	if opts.File == "" {
		log.Logger = zerolog.New(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	rotating := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14,
	}

	var w io.Writer = rotating
	if opts.Console != nil {
		w = zerolog.MultiLevelWriter(rotating, zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: time.Kitchen})
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	log.Info().Str("file", opts.File).Str("level", zerolog.GlobalLevel().String()).Msg("logging initialised")
	return rotating, nil
}
