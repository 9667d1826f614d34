// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build integration

package seqfetch

import (
	"context"
	"os"
	"strings"

	"gopkg.in/check.v1"
)

// Run with go test -tags=integration. These tests reach NCBI and UniProt.

func (s *S) TestEntrezLive(c *check.C) {
	email := os.Getenv("ENTREZ_EMAIL")
	if email == "" {
		c.Skip("ENTREZ_EMAIL not set")
	}
	seq, err := Sequence(context.Background(), &Entrez{Email: email}, "P35625")
	c.Assert(err, check.Equals, nil)
	c.Check(seq, check.HasLen, 211)
}

func (s *S) TestUniProtLive(c *check.C) {
	seq, err := Sequence(context.Background(), &UniProt{}, "P35625")
	c.Assert(err, check.Equals, nil)
	c.Check(strings.HasPrefix(seq, "MTPWLGLIVLLGSWSLGDWGAEA"), check.Equals, true)
}
