// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package afjob builds structure-prediction server batch submissions from
// FASTA files and maps downloaded result archive names to the project
// naming convention.
package afjob

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/naryzach/PhD-Research/fastarec"
)

// Job is a single submission. Every record of the source file becomes one
// protein chain.
type Job struct {
	Name       string  `json:"name"`
	Sequences  []Chain `json:"sequences"`
	ModelSeeds []int   `json:"modelSeeds"`
}

// Chain wraps one entity of a job.
type Chain struct {
	ProteinChain *ProteinChain `json:"proteinChain,omitempty"`
}

// ProteinChain is a protein entity and its copy number.
type ProteinChain struct {
	Sequence string `json:"sequence"`
	Count    int    `json:"count"`
}

// FromFile returns the job for the records read from path. The job is
// named after the file stem.
func FromFile(path string, f fastarec.File) Job {
	base := filepath.Base(path)
	j := Job{
		Name:       strings.TrimSuffix(base, filepath.Ext(base)),
		Sequences:  make([]Chain, 0, len(f)),
		ModelSeeds: []int{},
	}
	for _, r := range f {
		j.Sequences = append(j.Sequences, Chain{ProteinChain: &ProteinChain{Sequence: r.Sequence, Count: 1}})
	}
	return j
}

// Encode writes jobs as an indented JSON array.
func Encode(w io.Writer, jobs []Job) error {
	if jobs == nil {
		jobs = []Job{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jobs)
}

// Summary describes the chains of a set of jobs. Lengths are in residues.
type Summary struct {
	Jobs   int
	Chains int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d jobs, %d chains, length min %.0f max %.0f mean %.1f sd %.1f",
		s.Jobs, s.Chains, s.Min, s.Max, s.Mean, s.StdDev)
}

// Summarize returns the chain length statistics of jobs. The standard
// deviation is the sample standard deviation, zero for a single chain.
func Summarize(jobs []Job) Summary {
	var lens []float64
	for _, j := range jobs {
		for _, c := range j.Sequences {
			if c.ProteinChain != nil {
				lens = append(lens, float64(len(c.ProteinChain.Sequence)))
			}
		}
	}
	s := Summary{Jobs: len(jobs), Chains: len(lens)}
	if len(lens) == 0 {
		return s
	}
	s.Min, s.Max = floats.Min(lens), floats.Max(lens)
	if len(lens) < 2 {
		s.Mean = lens[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(lens, nil)
	return s
}

// resultPattern matches the archive names produced by the server:
// fold_{ligand}_variant_{variant}_{target}.zip.
var resultPattern = regexp.MustCompile(`(?i)^fold_([a-z0-9]+)_variant_([a-z0-9]+)_([a-z0-9]+)\.zip$`)

// ResultName returns {ligand}_variant_{target}_{variant}.zip for a result
// archive name, and false if name does not follow the server's pattern.
func ResultName(name string) (string, bool) {
	m := resultPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s_variant_%s_%s.zip", m[1], m[3], m[2]), true
}
