// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the options shared by the preparation tools. Values
// are read from an optional JSON file; command line flags given to a tool
// override them.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/naryzach/PhD-Research/batch"
	"github.com/naryzach/PhD-Research/fastarec"
	"github.com/naryzach/PhD-Research/substitute"
)

type Config struct {
	InputDir   string   `json:"input_dir"`
	OutputDir  string   `json:"output_dir"`
	Extensions []string `json:"extensions"`
	Width      int      `json:"width"`
	LogLevel   string   `json:"log_level"`
	LogFile    string   `json:"log_file"`

	Replace  Replace  `json:"replace"`
	Variants Variants `json:"variants"`
	Jobs     Jobs     `json:"jobs"`
}

// Replace configures whole-record replacement.
type Replace struct {
	Replacement   string `json:"replacement"`
	Index         int    `json:"index"`
	ComplexPrefix string `json:"complex_prefix"`
	Delimiter     string `json:"delimiter"`
	RebuildHeader bool   `json:"rebuild_header"`
	HeaderLabel   string `json:"header_label"`
}

// Protein names a reference sequence by its accession.
type Protein struct {
	Name      string `json:"name"`
	Accession string `json:"accession"`
}

// Template is the wild-type sequence variants are derived from.
type Template struct {
	Protein
	SignalPeptide  int `json:"signal_peptide"`
	Start          int `json:"start"`
	Length         int `json:"length"`
	ExpectedLength int `json:"expected_length"`
}

// Variants configures variant generation.
type Variants struct {
	Template Template  `json:"template"`
	Targets  []Protein `json:"targets"`
	Motifs   []string  `json:"motifs"`
	WildType string    `json:"wild_type"`
	Source   string    `json:"source"`
	Email    string    `json:"email"`
}

// Jobs configures batch-job assembly.
type Jobs struct {
	Output string `json:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		InputDir:   "input_fastas",
		OutputDir:  "output_fastas",
		Extensions: append([]string(nil), batch.DefaultExtensions...),
		Width:      fastarec.DefaultWidth,
		LogLevel:   "info",
		Replace: Replace{
			Index:         substitute.Second,
			ComplexPrefix: substitute.ComplexPrefix,
			Delimiter:     substitute.DefaultDelim,
		},
		Variants: Variants{
			Template: Template{
				Protein:        Protein{Name: "TIMP3", Accession: "P35625"},
				SignalPeptide:  23,
				Start:          62,
				Length:         6,
				ExpectedLength: 211,
			},
			Targets: []Protein{
				{Name: "MMP9", Accession: "P14780"},
				{Name: "MMP2", Accession: "P08253"},
				{Name: "MMP10", Accession: "P09238"},
				{Name: "ADAM10", Accession: "O14672"},
				{Name: "ADAM17", Accession: "P78536"},
			},
			Motifs: []string{
				"AGESNA", "AGESNC", "AGESTA", "AGESTC", "ASESNA",
				"ASESNC", "ASESTA", "ASESTC", "YSEDIC", "YSEDID",
				"YSEDMC", "YSEDMD", "YSEDPC", "YSEDPD", "YKEDIC",
				"YKEDID", "YKEDMC", "YKEDMD", "YKEDPC", "YKEDPD",
				"ASESLC",
			},
			WildType: "ASESLC",
			Source:   "uniprot",
		},
		Jobs: Jobs{Output: "alphafold_jobs.json"},
	}
}

// Load reads the JSON configuration at path over the defaults. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

var (
	ErrNoReplacement = errors.New("config: no replacement sequence")
	ErrNoInput       = errors.New("config: no input directory")
	ErrNoOutput      = errors.New("config: no output directory")
)

// Batch returns the batch driver options held in c.
func (c *Config) Batch() batch.Config {
	return batch.Config{
		InputDir:   c.InputDir,
		OutputDir:  c.OutputDir,
		Extensions: c.Extensions,
		Width:      c.Width,
	}
}

// ValidateDirs checks that input and output directories are set.
func (c *Config) ValidateDirs() error {
	switch {
	case c.InputDir == "":
		return ErrNoInput
	case c.OutputDir == "":
		return ErrNoOutput
	}
	return nil
}

// ValidateReplace checks the options needed by whole-record replacement.
func (c *Config) ValidateReplace() error {
	if err := c.ValidateDirs(); err != nil {
		return err
	}
	if c.Replace.Replacement == "" {
		return ErrNoReplacement
	}
	if c.Replace.Index < 0 {
		return fmt.Errorf("config: negative record index %d", c.Replace.Index)
	}
	return nil
}

// ValidateVariants checks the variant catalog.
func (c *Config) ValidateVariants() error {
	v := c.Variants
	switch {
	case v.Template.Accession == "":
		return errors.New("config: no template accession")
	case len(v.Targets) == 0:
		return errors.New("config: no targets")
	case len(v.Motifs) == 0:
		return errors.New("config: no motifs")
	case v.Template.SignalPeptide < 0 || v.Template.Start < 0 || v.Template.Length < 0:
		return errors.New("config: negative template offset")
	}
	for i, t := range v.Targets {
		if t.Name == "" || t.Accession == "" {
			return fmt.Errorf("config: target %d needs a name and an accession", i+1)
		}
	}
	switch v.Source {
	case "uniprot":
	case "entrez":
		if v.Email == "" {
			return errors.New("config: entrez source requires an email address")
		}
	default:
		return fmt.Errorf("config: unknown sequence source %q", v.Source)
	}
	return nil
}

// Rule returns the substitution rule described by the replace options.
// Files named with the complex prefix get composite-header handling, with
// fallback warnings sent to l.
func (c *Config) Rule(l *log.Logger) substitute.Rule {
	r := substitute.Replace{Index: c.Replace.Index, Sequence: c.Replace.Replacement}
	if c.Replace.ComplexPrefix == "" {
		return r
	}
	return substitute.ByPrefix{
		Prefix: c.Replace.ComplexPrefix,
		Match: substitute.Composite{
			Replace:       r,
			Delim:         c.Replace.Delimiter,
			RebuildHeader: c.Replace.RebuildHeader,
			Label:         c.Replace.HeaderLabel,
			Logger:        l,
		},
		Default: r,
	}
}
