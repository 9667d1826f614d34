// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastarec

import (
	"bufio"
	"io"
	"os"

	"github.com/biogo/biogo/util"
)

const (
	// DefaultWidth is the conventional FASTA sequence line width.
	DefaultWidth = 60

	// Unwrapped writes each sequence on a single line.
	Unwrapped = 0
)

// Writer writes records in FASTA format. It is the only place the '>'
// header marker is added.
type Writer struct {
	w     io.Writer
	Width int
}

// NewWriter returns a Writer that wraps sequence lines at width letters.
// A width less than one disables wrapping.
func NewWriter(w io.Writer, width int) *Writer {
	if width < 0 {
		width = Unwrapped
	}
	return &Writer{w: w, Width: width}
}

// Write writes r followed by a newline. A record with an empty sequence
// is written as its header line alone.
func (w *Writer) Write(r Record) (n int, err error) {
	var _n int
	n, err = io.WriteString(w.w, ">"+r.Header+"\n")
	if err != nil || r.Sequence == "" {
		return n, err
	}
	lw := util.NewWrapper(w.w, w.Width, -1)
	_n, err = io.WriteString(lw, r.Sequence)
	if n += _n; err != nil {
		return n, err
	}
	_n, err = io.WriteString(w.w, "\n")
	return n + _n, err
}

// Encode writes every record of f to dst.
func Encode(dst io.Writer, f File, width int) error {
	bw := bufio.NewWriter(dst)
	w := NewWriter(bw, width)
	for _, r := range f {
		if _, err := w.Write(r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes f to path, replacing any existing file. A partially
// written file is removed on failure.
func WriteFile(path string, f File, width int) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return Encode(out, f, width)
}
