// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clilog builds the leveled, human-readable logger used by the
// command line tools.
package clilog

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr and, if file is not empty, also
// appending to file. The returned close function releases the file and
// is always safe to call. An unknown level falls back to info with a
// warning.
func New(prefix, level, file string) (*log.Logger, func() error, error) {
	var (
		out    io.Writer = os.Stderr
		closer           = func() error { return nil }
	)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, err
		}
		out = io.MultiWriter(os.Stderr, f)
		closer = f.Close
	}
	l := log.NewWithOptions(out, log.Options{Prefix: prefix})
	lvl, ok := Level(level)
	l.SetLevel(lvl)
	if !ok {
		l.Warn("unknown log level, defaulting to info", "provided", level)
	}
	return l, closer, nil
}

// Level maps a configuration level name to a log level. The empty string
// is info. It returns false for unknown names.
func Level(name string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}
