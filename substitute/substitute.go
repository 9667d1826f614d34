// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package substitute implements the sequence substitution rules applied to
// parsed FASTA files before submission: whole-record replacement, positional
// splicing of a motif into a template, and the composite-header variant of
// replacement used for multi-chain complex files.
//
// Records are identified by their position in the file. The second record
// of a two-chain job is index 1.
package substitute

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/naryzach/PhD-Research/fastarec"
)

var (
	ErrTooFewRecords    = errors.New("substitute: too few records")
	ErrOutOfRange       = errors.New("substitute: splice out of range")
	ErrEmptyReplacement = errors.New("substitute: empty replacement sequence")
)

const (
	// Second is the index of the second chain of a pair.
	Second = 1

	// DefaultDelim separates the chains of a composite header.
	DefaultDelim = ":"

	// ComplexPrefix marks files holding a multi-chain complex.
	ComplexPrefix = "complex_"
)

// Rule transforms a FASTA file. The name is the base name of the file the
// records were read from. Apply must not modify f.
type Rule interface {
	Apply(name string, f fastarec.File) (fastarec.File, error)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(name string, f fastarec.File) (fastarec.File, error)

func (fn RuleFunc) Apply(name string, f fastarec.File) (fastarec.File, error) { return fn(name, f) }

func checkIndex(f fastarec.File, i int) error {
	if i < 0 || i >= len(f) {
		return fmt.Errorf("%w: need record %d, have %d", ErrTooFewRecords, i+1, len(f))
	}
	return nil
}

// Replace replaces the sequence of the record at Index with Sequence. The
// header is left unchanged.
type Replace struct {
	Index    int
	Sequence string
}

func (r Replace) Apply(_ string, f fastarec.File) (fastarec.File, error) {
	if r.Sequence == "" {
		return nil, ErrEmptyReplacement
	}
	if err := checkIndex(f, r.Index); err != nil {
		return nil, err
	}
	f = f.Clone()
	f[r.Index].Sequence = r.Sequence
	return f, nil
}

// Splice replaces Length letters of the record at Index, starting at the
// 0-based offset Start, with Motif. Motif may be of any length.
type Splice struct {
	Index  int
	Start  int
	Length int
	Motif  string
}

func (s Splice) Apply(_ string, f fastarec.File) (fastarec.File, error) {
	if err := checkIndex(f, s.Index); err != nil {
		return nil, err
	}
	v, err := Variant(f[s.Index].Sequence, s.Start, s.Length, s.Motif)
	if err != nil {
		return nil, fmt.Errorf("record %d (%s): %w", s.Index+1, f[s.Index].Header, err)
	}
	f = f.Clone()
	f[s.Index].Sequence = v
	return f, nil
}

// Composite replaces the sequence of a record whose header joins several
// chains with Delim. When RebuildHeader is set the header is cut back to
// the text before the first delimiter, and Label is appended after a
// delimiter if it is not empty. A header without the delimiter is logged
// as a warning and handled as a plain Replace.
type Composite struct {
	Replace
	Delim         string
	RebuildHeader bool
	Label         string

	// Logger receives fallback warnings. If nil, log.Default is used.
	Logger *log.Logger
}

func (c Composite) Apply(name string, f fastarec.File) (fastarec.File, error) {
	out, err := c.Replace.Apply(name, f)
	if err != nil {
		return nil, err
	}
	delim := c.Delim
	if delim == "" {
		delim = DefaultDelim
	}
	h := out[c.Index].Header
	id, _, ok := strings.Cut(h, delim)
	if !ok {
		c.logger().Warn("composite file has no chain delimiter in header; replacing whole sequence",
			"file", name, "header", h, "delim", delim)
		return out, nil
	}
	if c.RebuildHeader {
		if c.Label != "" {
			id += delim + c.Label
		}
		out[c.Index].Header = id
	}
	return out, nil
}

func (c Composite) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// ByPrefix applies Match to files whose name begins with Prefix and
// Default to all others.
type ByPrefix struct {
	Prefix  string
	Match   Rule
	Default Rule
}

func (b ByPrefix) Apply(name string, f fastarec.File) (fastarec.File, error) {
	if strings.HasPrefix(name, b.Prefix) {
		return b.Match.Apply(name, f)
	}
	return b.Default.Apply(name, f)
}
