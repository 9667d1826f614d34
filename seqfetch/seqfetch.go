// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqfetch retrieves reference protein sequences from remote
// databases. Results are parsed FASTA, indistinguishable from records
// read from a local file.
package seqfetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naryzach/PhD-Research/fastarec"
)

var (
	ErrNotFound      = errors.New("seqfetch: accession not found")
	ErrEmptySequence = errors.New("seqfetch: empty sequence")
)

// DefaultRetries is the number of attempts made for a retryable failure.
const DefaultRetries = 3

// Fetcher retrieves the FASTA records held for an accession.
type Fetcher interface {
	Fetch(ctx context.Context, accession string) (fastarec.File, error)
}

// Sequence returns the sequence of the first record f holds for
// accession.
func Sequence(ctx context.Context, f Fetcher, accession string) (string, error) {
	recs, err := f.Fetch(ctx, accession)
	if err != nil {
		return "", fmt.Errorf("%s: %w", accession, err)
	}
	if len(recs) == 0 {
		return "", fmt.Errorf("%s: %w", accession, ErrNotFound)
	}
	if recs[0].Sequence == "" {
		return "", fmt.Errorf("%s: %w", accession, ErrEmptySequence)
	}
	return recs[0].Sequence, nil
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
