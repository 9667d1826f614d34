// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package substitute

import (
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/sequtils"
)

func checkWindow(n, start, length int) error {
	if start < 0 || length < 0 || start+length > n {
		return fmt.Errorf("%w: window [%d,%d) of sequence length %d", ErrOutOfRange, start, start+length, n)
	}
	return nil
}

func protein(s string) *linear.Seq {
	return linear.NewSeq("", alphabet.BytesToLetters([]byte(s)), alphabet.Protein)
}

func letters(s *linear.Seq) string {
	return string(alphabet.LettersToBytes(s.Seq))
}

// Variant returns template with the length letters at start replaced by
// motif. The result has length len(template)-length+len(motif) and the
// flanks outside the window are unchanged.
func Variant(template string, start, length int, motif string) (string, error) {
	if err := checkWindow(len(template), start, length); err != nil {
		return "", err
	}
	t := protein(template)
	v := linear.NewSeq("", nil, alphabet.Protein)
	if err := sequtils.Truncate(v, t, 0, start); err != nil {
		return "", err
	}
	right := linear.NewSeq("", nil, alphabet.Protein)
	if err := sequtils.Truncate(right, t, start+length, t.Len()); err != nil {
		return "", err
	}
	for _, part := range []*linear.Seq{protein(motif), right} {
		if err := sequtils.Join(v, part, seq.End); err != nil {
			return "", err
		}
	}
	return letters(v), nil
}

// Segment returns the length letters of template at start, the window a
// call to Variant with the same arguments would replace.
func Segment(template string, start, length int) (string, error) {
	if err := checkWindow(len(template), start, length); err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	seg := linear.NewSeq("", nil, alphabet.Protein)
	if err := sequtils.Truncate(seg, protein(template), start, start+length); err != nil {
		return "", err
	}
	return letters(seg), nil
}
