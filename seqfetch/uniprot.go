// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/naryzach/PhD-Research/fastarec"
)

// UniProtURL is the base URL of the UniProt REST service.
const UniProtURL = "https://rest.uniprot.org"

// UniProt fetches UniProtKB entries in FASTA format.
type UniProt struct {
	// BaseURL defaults to UniProtURL.
	BaseURL string

	// Client defaults to a client with a 10 second timeout.
	Client *http.Client

	// Retries is the number of attempts made on transport errors and
	// 429 or 5xx responses. Attempts are spaced by Backoff times the
	// attempt number.
	Retries int
	Backoff time.Duration
}

var defaultClient = &http.Client{Timeout: 10 * time.Second}

func (u *UniProt) Fetch(ctx context.Context, accession string) (fastarec.File, error) {
	if accession == "" {
		return nil, ErrNotFound
	}
	base := u.BaseURL
	if base == "" {
		base = UniProtURL
	}
	client := u.Client
	if client == nil {
		client = defaultClient
	}
	retries := u.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}
	backoff := u.Backoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	target := strings.TrimRight(base, "/") + "/uniprotkb/" + url.PathEscape(accession) + ".fasta"

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		if attempt > 1 {
			if err := wait(ctx, time.Duration(attempt-1)*backoff); err != nil {
				return nil, err
			}
		}
		f, retry, err := u.get(ctx, client, target)
		if err == nil {
			return f, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("uniprot: giving up after %d attempts: %w", retries, lastErr)
}

func (u *UniProt) get(ctx context.Context, client *http.Client, target string) (f fastarec.File, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "text/plain")
	resp, err := client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusOK:
		f, err = fastarec.Parse(resp.Body)
		return f, false, err
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("uniprot: %s", resp.Status)
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return nil, false, fmt.Errorf("uniprot: %s: %s", resp.Status, strings.TrimSpace(string(body)))
}
