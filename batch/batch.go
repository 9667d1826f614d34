// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch runs a FASTA transformation over every matching file in a
// directory, one file at a time. A failure on one file is logged and the
// file skipped; the remaining files are still processed.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/naryzach/PhD-Research/fastarec"
)

// ErrDuplicateOutput is the skip reason for an input whose output path was
// already written earlier in the same run.
var ErrDuplicateOutput = errors.New("batch: duplicate output path")

// DefaultExtensions are the FASTA file extensions matched when a Config
// names none.
var DefaultExtensions = []string{".fasta", ".fa"}

// Config holds the options of a batch run.
type Config struct {
	InputDir  string
	OutputDir string

	// Extensions are matched against input file names without regard
	// to case.
	Extensions []string

	// Suffix is appended to the stem of each output file name. If
	// OutputExt is not empty it replaces the input extension.
	Suffix    string
	OutputExt string

	// Width is the sequence line width of written files.
	Width int
}

func (c Config) extensions() []string {
	if len(c.Extensions) == 0 {
		return DefaultExtensions
	}
	return c.Extensions
}

// OutputPath returns the output path for the named input file.
func (c Config) OutputPath(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if c.OutputExt != "" {
		ext = c.OutputExt
	}
	return filepath.Join(c.OutputDir, stem+c.Suffix+ext)
}

// Match reports whether name has one of exts, ignoring case.
func Match(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Files returns the paths of the regular files in dir whose extension
// matches exts, in lexical order. Symbolic links are followed and
// dangling links are ignored.
func Files(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !Match(e.Name(), exts) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if e.Type()&fs.ModeSymlink != 0 {
			fi, err := os.Stat(p)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		} else if !e.Type().IsRegular() {
			continue
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

// Transform converts a parsed file. The name is the input file's base
// name. A returned error causes the file to be skipped.
type Transform func(name string, f fastarec.File) (fastarec.File, error)

// Skip records a file that was not written and why.
type Skip struct {
	File   string
	Reason error
}

// Report summarises a batch run.
type Report struct {
	Found     int
	Processed int
	Skipped   int
	Skips     []Skip
}

func (r Report) String() string {
	return fmt.Sprintf("found %d, processed %d, skipped %d", r.Found, r.Processed, r.Skipped)
}

// Driver applies Transform to each file selected by Config.
type Driver struct {
	Config    Config
	Transform Transform

	// Logger receives per-file diagnostics. If nil, log.Default is used.
	Logger *log.Logger
}

// Run processes the input directory. It returns an error only when the
// run as a whole cannot proceed.
func (d *Driver) Run() (Report, error) {
	var rep Report
	l := d.Logger
	if l == nil {
		l = log.Default()
	}
	if d.Transform == nil {
		return rep, errors.New("batch: no transform")
	}

	paths, err := Files(d.Config.InputDir, d.Config.extensions())
	if err != nil {
		return rep, fmt.Errorf("batch: reading input directory: %w", err)
	}
	if err := os.MkdirAll(d.Config.OutputDir, 0o755); err != nil {
		return rep, fmt.Errorf("batch: creating output directory: %w", err)
	}
	rep.Found = len(paths)
	if len(paths) == 0 {
		l.Warn("no FASTA files found", "dir", d.Config.InputDir, "extensions", strings.Join(d.Config.extensions(), ","))
		return rep, nil
	}

	written := make(map[string]string)
	for _, p := range paths {
		name := filepath.Base(p)
		l.Info("processing", "file", name)
		out := d.Config.OutputPath(name)
		if prev, ok := written[out]; ok {
			err := fmt.Errorf("%w: %s already written from %s", ErrDuplicateOutput, filepath.Base(out), prev)
			rep.Skipped++
			rep.Skips = append(rep.Skips, Skip{File: name, Reason: err})
			l.Warn("skipping", "file", name, "reason", err)
			continue
		}
		if err := d.process(p, out); err != nil {
			rep.Skipped++
			rep.Skips = append(rep.Skips, Skip{File: name, Reason: err})
			if isInputError(err) {
				l.Warn("skipping", "file", name, "reason", err)
			} else {
				l.Error("skipping", "file", name, "err", err)
			}
			continue
		}
		rep.Processed++
		written[out] = name
		l.Info("wrote", "file", name, "out", out)
	}
	return rep, nil
}

func (d *Driver) process(path, out string) error {
	f, err := fastarec.ReadFile(path)
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	f, err = d.Transform(filepath.Base(path), f)
	if err != nil {
		return err
	}
	return fastarec.WriteFile(out, f, d.Config.Width)
}

// isInputError reports whether err is caused by the content of a file
// rather than by the file system.
func isInputError(err error) bool {
	var pe *os.PathError
	return !errors.As(err, &pe)
}
