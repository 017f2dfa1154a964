// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package logging sets up zerolog for the daemon and tests.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tonomy/economy/pkg/errors"
)

// New returns a logger writing to w at the given level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.BadRequest.WithFormat("parse log level: %w", err)
	}
	return zerolog.New(w).Level(logLevel).With().Timestamp().Logger(), nil
}

// NewConsole returns a human-readable logger for interactive use.
func NewConsole(level string) (zerolog.Logger, error) {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return New(w, level)
}
