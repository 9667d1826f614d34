// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Afbatch assembles the FASTA files in a directory into a single JSON
// batch submission for a structure-prediction server. Each file becomes
// one job with one protein chain per record.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/naryzach/PhD-Research/afjob"
	"github.com/naryzach/PhD-Research/batch"
	"github.com/naryzach/PhD-Research/clilog"
	"github.com/naryzach/PhD-Research/config"
	"github.com/naryzach/PhD-Research/fastarec"
)

var (
	in      = flag.String("in", "", "in specifies the directory searched for FASTA files (default output_fastas).")
	out     = flag.String("out", "", "out specifies the JSON file written (default alphafold_jobs.json).")
	cfgPath = flag.String("config", "", "config specifies a JSON configuration file.")
	level   = flag.String("log-level", "", "log-level specifies the logging level (debug, info, warn or error).")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dir := cfg.OutputDir
	if *in != "" {
		dir = *in
	}
	dst := cfg.Jobs.Output
	if *out != "" {
		dst = *out
	}
	if *level != "" {
		cfg.LogLevel = *level
	}

	l, closeLog, err := clilog.New("afbatch", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	jobs, err := collect(dir, l)
	if err != nil {
		l.Error("collecting jobs failed", "dir", dir, "err", err)
		closeLog()
		os.Exit(1)
	}
	if len(jobs) == 0 {
		l.Warn("no FASTA files found", "dir", dir)
		return
	}

	f, err := os.Create(dst)
	if err != nil {
		l.Error("creating job file failed", "err", err)
		closeLog()
		os.Exit(1)
	}
	err = afjob.Encode(f, jobs)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		l.Error("writing job file failed", "file", dst, "err", err)
		closeLog()
		os.Exit(1)
	}
	l.Info("wrote jobs", "file", dst, "jobs", len(jobs))
	fmt.Println(afjob.Summarize(jobs))
}

// collect returns one job for each .fasta file in dir, in lexical order.
// Files that cannot be read or are invalid are skipped.
func collect(dir string, l *log.Logger) ([]afjob.Job, error) {
	paths, err := batch.Files(dir, []string{".fasta"})
	if err != nil {
		return nil, err
	}
	var jobs []afjob.Job
	for _, p := range paths {
		f, err := fastarec.ReadFile(p)
		if err == nil {
			err = f.Validate()
		}
		if err != nil {
			l.Warn("skipping", "file", filepath.Base(p), "reason", err)
			continue
		}
		jobs = append(jobs, afjob.FromFile(p, f))
		l.Info("added job", "file", filepath.Base(p), "chains", len(f))
	}
	return jobs, nil
}
