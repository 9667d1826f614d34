// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Makevariants builds template/target complex FASTA files for a catalog of
// motif variants of a template protein. The template and target sequences
// are retrieved from UniProt or NCBI Entrez. For each target a directory is
// written holding one two-record file and one joined-chain file per motif.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/naryzach/PhD-Research/chains"
	"github.com/naryzach/PhD-Research/clilog"
	"github.com/naryzach/PhD-Research/config"
	"github.com/naryzach/PhD-Research/fastarec"
	"github.com/naryzach/PhD-Research/seqfetch"
	"github.com/naryzach/PhD-Research/substitute"
)

var (
	out     = flag.String("out", "", "out specifies the directory variant files are written to.")
	source  = flag.String("source", "", "source specifies the sequence service (uniprot or entrez).")
	email   = flag.String("email", "", "email specifies the email address sent to NCBI (required for entrez).")
	timeout = flag.Duration("timeout", 2*time.Minute, "timeout limits the time spent retrieving sequences.")
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
	if *out != "" {
		cfg.OutputDir = *out
	}
	if *source != "" {
		cfg.Variants.Source = *source
	}
	if *email != "" {
		cfg.Variants.Email = *email
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if err := cfg.ValidateVariants(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	l, closeLog, err := clilog.New("makevariants", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var f seqfetch.Fetcher
	switch cfg.Variants.Source {
	case "entrez":
		f = &seqfetch.Entrez{Tool: "makevariants", Email: cfg.Variants.Email}
	default:
		f = &seqfetch.UniProt{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	n, err := generate(ctx, f, cfg.Variants, cfg.OutputDir, l)
	if err != nil {
		l.Error("variant generation failed", "err", err)
		cancel()
		closeLog()
		os.Exit(1)
	}
	l.Info("done", "files", n, "out", cfg.OutputDir)
}

// generate writes the variant complexes described by v below dir and
// returns the number of template/target pairs written. Every sequence is
// fetched before anything is written.
func generate(ctx context.Context, f seqfetch.Fetcher, v config.Variants, dir string, l *log.Logger) (int, error) {
	t := v.Template
	template, err := seqfetch.Sequence(ctx, f, t.Accession)
	if err != nil {
		return 0, fmt.Errorf("template %s: %w", t.Name, err)
	}
	if t.ExpectedLength > 0 && len(template) != t.ExpectedLength {
		l.Warn("unexpected template length", "protein", t.Name, "length", len(template), "expected", t.ExpectedLength)
	}
	if t.SignalPeptide > len(template) {
		return 0, fmt.Errorf("template %s: signal peptide %d longer than sequence: %w", t.Name, t.SignalPeptide, substitute.ErrOutOfRange)
	}
	mature := template[t.SignalPeptide:]
	wt, err := substitute.Segment(mature, t.Start, t.Length)
	if err != nil {
		return 0, fmt.Errorf("template %s: %w", t.Name, err)
	}
	l.Info("replacing segment", "protein", t.Name, "start", t.Start, "length", t.Length, "segment", wt)
	if v.WildType != "" && wt != v.WildType {
		l.Warn("segment differs from wild type", "segment", wt, "wild_type", v.WildType)
	}

	targets := make([]fastarec.Record, len(v.Targets))
	for i, p := range v.Targets {
		seq, err := seqfetch.Sequence(ctx, f, p.Accession)
		if err != nil {
			return 0, fmt.Errorf("target %s: %w", p.Name, err)
		}
		targets[i] = fastarec.Record{Header: p.Name + "_HUMAN|" + p.Accession, Sequence: seq}
	}

	type variant struct {
		label string
		rec   fastarec.Record
	}
	variants := make([]variant, 0, len(v.Motifs))
	for _, m := range v.Motifs {
		seq, err := substitute.Variant(mature, t.Start, t.Length, m)
		if err != nil {
			return 0, fmt.Errorf("motif %s: %w", m, err)
		}
		label := m
		if m == v.WildType {
			label = "WT"
		}
		variants = append(variants, variant{
			label: label,
			rec:   fastarec.Record{Header: fmt.Sprintf("%s_VARIANT_%s_HUMAN|%s", t.Name, label, t.Accession), Sequence: seq},
		})
	}

	var n int
	for i, p := range v.Targets {
		td := filepath.Join(dir, p.Name)
		if err := os.MkdirAll(td, 0o755); err != nil {
			return n, err
		}
		for _, va := range variants {
			pair := fastarec.File{va.rec, targets[i]}
			name := fmt.Sprintf("%s_v_%s_C_%s.fasta", t.Name, p.Name, va.label)
			if err := fastarec.WriteFile(filepath.Join(td, name), pair, fastarec.Unwrapped); err != nil {
				return n, err
			}
			joined := fastarec.File{chains.Join(pair, chains.HeaderDelim, chains.SeqDelim)}
			if err := fastarec.WriteFile(filepath.Join(td, substitute.ComplexPrefix+name), joined, fastarec.Unwrapped); err != nil {
				return n, err
			}
			l.Debug("wrote", "target", p.Name, "variant", va.label)
			n++
		}
		l.Info("target complete", "target", p.Name, "variants", len(variants), "dir", td)
	}
	return n, nil
}
