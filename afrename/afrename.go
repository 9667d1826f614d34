// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Afrename renames downloaded structure-prediction result archives from
// the server's fold_{ligand}_variant_{variant}_{target}.zip form to
// {ligand}_variant_{target}_{variant}.zip.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/naryzach/PhD-Research/afjob"
	"github.com/naryzach/PhD-Research/clilog"
)

var (
	dir   = flag.String("dir", "./AlphaFold", "dir specifies the directory holding result archives.")
	dry   = flag.Bool("n", false, "n prints the renames without performing them.")
	level = flag.String("log-level", "info", "log-level specifies the logging level (debug, info, warn or error).")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	l, closeLog, err := clilog.New("afrename", *level, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	n, err := rename(*dir, *dry, l)
	if err != nil {
		l.Error("reading directory failed", "dir", *dir, "err", err)
		closeLog()
		os.Exit(1)
	}
	l.Info("done", "renamed", n, "dry_run", *dry)
}

// rename renames every result archive in dir and returns the number of
// archives renamed. Failures of single renames are logged and skipped.
// If dry is true nothing is changed.
func rename(dir string, dry bool, l *log.Logger) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	var n int
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name, ok := afjob.ResultName(e.Name())
		if !ok {
			l.Debug("ignoring", "file", e.Name())
			continue
		}
		if dry {
			fmt.Printf("%s -> %s\n", e.Name(), name)
			n++
			continue
		}
		dst := filepath.Join(dir, name)
		if _, err := os.Stat(dst); err == nil {
			l.Warn("destination exists, skipping", "file", e.Name(), "to", name)
			continue
		}
		if err := os.Rename(filepath.Join(dir, e.Name()), dst); err != nil {
			l.Error("rename failed", "file", e.Name(), "err", err)
			continue
		}
		l.Info("renamed", "from", e.Name(), "to", name)
		n++
	}
	return n, nil
}
