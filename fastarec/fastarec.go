// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastarec provides an ordered, in-memory store of FASTA records
// together with the reading and writing rules shared by the preparation tools.
//
// Headers are held without the leading '>' marker. The marker is added back
// only by Writer, so a record read and written any number of times never
// acquires a doubled prefix.
package fastarec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrMalformed is returned when the input is not FASTA, for example
	// when sequence data appears before the first header line.
	ErrMalformed = errors.New("fastarec: malformed FASTA")

	ErrNoRecords     = errors.New("fastarec: no records")
	ErrEmptyHeader   = errors.New("fastarec: empty header")
	ErrEmptySequence = errors.New("fastarec: empty sequence")
)

// Record is a single FASTA entry.
type Record struct {
	Header   string
	Sequence string
}

// File is an ordered list of records. Headers need not be unique.
type File []Record

// Clone returns a copy of f that shares no storage with it.
func (f File) Clone() File {
	if f == nil {
		return nil
	}
	c := make(File, len(f))
	copy(c, f)
	return c
}

// Headers returns the record headers in file order.
func (f File) Headers() []string {
	h := make([]string, len(f))
	for i, r := range f {
		h[i] = r.Header
	}
	return h
}

// Validate checks that f holds at least one record and that every record
// has a header and a sequence.
func (f File) Validate() error {
	if len(f) == 0 {
		return ErrNoRecords
	}
	for i, r := range f {
		if r.Header == "" {
			return fmt.Errorf("record %d: %w", i+1, ErrEmptyHeader)
		}
		if r.Sequence == "" {
			return fmt.Errorf("record %d (%s): %w", i+1, r.Header, ErrEmptySequence)
		}
	}
	return nil
}

// Parse reads FASTA records from r. Blank lines are ignored, header
// whitespace is trimmed and sequence lines are concatenated with their
// whitespace removed. A header followed by no sequence still produces a
// record with an empty sequence.
func Parse(r io.Reader) (File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw := headerLines(b)

	var f File
	sc := seqio.NewScanner(fasta.NewReader(bytes.NewReader(b), linear.NewSeq("", nil, alphabet.Protein)))
	for i := 0; sc.Next(); i++ {
		s := sc.Seq().(*linear.Seq)
		h := header(s.Name(), s.Description())
		if i < len(raw) {
			h = raw[i]
		}
		f = append(f, Record{Header: h, Sequence: letters(s.Seq)})
	}
	if err := sc.Error(); err != nil {
		return f, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return f, nil
}

// ReadFile parses the FASTA file at path.
func ReadFile(path string) (File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	f, err := Parse(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// headerLines returns the trimmed text following '>' of each header line
// in b. The fasta reader splits headers at the first space or tab, losing
// which of the two it was.
func headerLines(b []byte) []string {
	var h []string
	for len(b) > 0 {
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line, b = b[:i], b[i+1:]
		} else {
			b = nil
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 && line[0] == '>' {
			h = append(h, string(bytes.TrimSpace(line[1:])))
		}
	}
	return h
}

// header rebuilds the full header line from the name/description split
// made by the fasta reader.
func header(name, desc string) string {
	if desc == "" {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(name + " " + desc)
}

func letters(l alphabet.Letters) string {
	return string(alphabet.LettersToBytes(l))
}
