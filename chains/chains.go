// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chains converts between the two representations of a two-chain
// complex: a single record whose sequence joins the chains with a
// delimiter, and separate records holding one chain each.
package chains

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/naryzach/PhD-Research/fastarec"
)

// ErrChainCount is returned when a joined sequence does not hold exactly
// two non-empty chains.
var ErrChainCount = errors.New("chains: expected exactly two chains")

const (
	// SeqDelim joins chain sequences in a complex record.
	SeqDelim = ":"

	// HeaderDelim joins chain headers in a complex record.
	HeaderDelim = "+"

	// Suffix is appended to the stem of a split file.
	Suffix = "_separated"
)

// Split separates the joined chains of a complex file into two records
// named after the first record's header with "_seq1" and "_seq2"
// appended. The joined sequence is taken from the first record whose
// sequence contains delim.
func Split(f fastarec.File, delim string) (fastarec.File, error) {
	if len(f) == 0 {
		return nil, fastarec.ErrNoRecords
	}
	if delim == "" {
		delim = SeqDelim
	}
	base := f[0].Header
	joined := f[0].Sequence
	for _, r := range f {
		if strings.Contains(r.Sequence, delim) {
			joined = r.Sequence
			break
		}
	}
	parts := strings.Split(joined, delim)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: found %d", ErrChainCount, len(parts))
	}
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: chain %d is empty", ErrChainCount, i+1)
		}
	}
	return fastarec.File{
		{Header: base + "_seq1", Sequence: parts[0]},
		{Header: base + "_seq2", Sequence: parts[1]},
	}, nil
}

// Join returns the single-record complex form of f, with headers joined
// by headerDelim and sequences joined by seqDelim.
func Join(f fastarec.File, headerDelim, seqDelim string) fastarec.Record {
	var h, s []string
	for _, r := range f {
		h = append(h, r.Header)
		s = append(s, r.Sequence)
	}
	return fastarec.Record{
		Header:   strings.Join(h, headerDelim),
		Sequence: strings.Join(s, seqDelim),
	}
}

// OutputName returns the file name used for the split form of the named
// complex file.
func OutputName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base)) + Suffix + ".fasta"
}
