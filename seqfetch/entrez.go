// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqfetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biogo/ncbi/entrez"

	"github.com/naryzach/PhD-Research/fastarec"
)

// Entrez fetches sequences from NCBI through the Entrez utilities. The
// accession is looked up with an [accn] search and the matching record
// is retrieved in FASTA format from the search history.
type Entrez struct {
	// DB defaults to "protein".
	DB string

	// Tool and Email identify the caller to NCBI. Email is required.
	Tool  string
	Email string

	// Retries is the number of attempts made on request failures.
	// Attempts are spaced by Backoff times the attempt number.
	Retries int
	Backoff time.Duration

	// query replaces the NCBI round trip in tests.
	query func(db, tool, accession string) (fastarec.File, error)
}

func (e *Entrez) Fetch(ctx context.Context, accession string) (fastarec.File, error) {
	if e.Email == "" {
		return nil, errors.New("entrez: email address required")
	}
	if accession == "" {
		return nil, ErrNotFound
	}
	db := e.DB
	if db == "" {
		db = "protein"
	}
	tool := e.Tool
	if tool == "" {
		tool = "makevariants"
	}
	retries := e.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}
	backoff := e.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}
	query := e.query
	if query == nil {
		query = e.fetch
	}

	var err error
	for attempt := 1; attempt <= retries; attempt++ {
		if attempt > 1 {
			if werr := wait(ctx, time.Duration(attempt-1)*backoff); werr != nil {
				return nil, werr
			}
		} else if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		var f fastarec.File
		f, err = query(db, tool, accession)
		if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, fastarec.ErrMalformed) {
			return f, err
		}
	}
	return nil, fmt.Errorf("entrez: giving up after %d attempts: %w", retries, err)
}

func (e *Entrez) fetch(db, tool, accession string) (fastarec.File, error) {
	h := entrez.History{}
	s, err := entrez.DoSearch(db, accession+"[accn]", nil, &h, tool, e.Email)
	if err != nil {
		return nil, err
	}
	if s.Count == 0 {
		return nil, ErrNotFound
	}
	p := &entrez.Parameters{RetMax: 1, RetType: "fasta", RetMode: "text"}
	r, err := entrez.Fetch(db, p, tool, e.Email, &h)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return fastarec.Parse(r)
}
