// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Splitcomplex separates the two chains of joined-chain FASTA files into
// two records each. For every input file stem.fasta a file
// stem_separated.fasta is written to the output directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/naryzach/PhD-Research/batch"
	"github.com/naryzach/PhD-Research/chains"
	"github.com/naryzach/PhD-Research/clilog"
	"github.com/naryzach/PhD-Research/config"
	"github.com/naryzach/PhD-Research/fastarec"
)

var (
	delim   = flag.String("delim", chains.SeqDelim, "delim specifies the chain delimiter of joined sequences.")
	width   = flag.Int("width", 0, "width specifies the sequence line width (0 does not wrap).")
	cfgPath = flag.String("config", "", "config specifies a JSON configuration file.")
	level   = flag.String("log-level", "", "log-level specifies the logging level (debug, info, warn or error).")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] INPUT_DIR OUTPUT_DIR\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.InputDir, cfg.OutputDir = flag.Arg(0), flag.Arg(1)
	override(cfg, flag.CommandLine)

	l, closeLog, err := clilog.New("splitcomplex", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	bc := cfg.Batch()
	bc.Suffix = chains.Suffix
	bc.OutputExt = ".fasta"
	d := batch.Driver{
		Config: bc,
		Transform: func(_ string, f fastarec.File) (fastarec.File, error) {
			return chains.Split(f, *delim)
		},
		Logger: l,
	}
	rep, err := d.Run()
	if err != nil {
		l.Error("run failed", "err", err)
		closeLog()
		os.Exit(1)
	}
	fmt.Println(rep)
}

// override copies the options explicitly given in set over cfg, leaving
// configuration file values in place for the others.
func override(cfg *config.Config, set *flag.FlagSet) {
	set.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = f.Value.(flag.Getter).Get().(int)
		case "log-level":
			cfg.LogLevel = f.Value.String()
		}
	})
}
