// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package substitute

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/check.v1"

	"github.com/naryzach/PhD-Research/fastarec"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const replacement = "YNFFPRKPKWDKNQITYRIIGYTPDLDPETVDDAFARAFQVWSDVTPLRFSRIHDGEADIMINFGRWEHGDGYPFDGKDGLLAHAFAPGTGVGGDSHFDDDELWTLGEGQVGYSLFLVAAHEFGHAMGLEHSQDPGALMAPIYTYTKNFRLSQDDIKGIQELYGASPDGSDYKDDDDK"

func pair() fastarec.File {
	return fastarec.File{
		{Header: "TIMP3_VARIANT_AGESNA_HUMAN|P35625", Sequence: "CTCSPSHPQDAFCNSDIVIRAKVVGKKLVKEGPFGTLVYTIKQMKMYRGFTKMPHVQYIHTEASESLCGLKLEVNKYQYLLTGRVYDGKMYTGLCNFVERWDQLTLSQRKGLNYRYHLGCNCKIKSCYYLPCFVTSKNECLWTDMLSNFGYPGYQSKHYACIRQKGGYCSWYRGWAPPDKSIINATDP"},
		{Header: "MMP9_HUMAN|P14780", Sequence: "MSLWQPLVLVLLVLGCCFAAPRQRQSTLVLFPGDLRTNLTDRQLAEEYLYRYGYTRVAEMRGESKSLGPALLLLQKQLSLPETGELDSATLKAMRTPRCGVPDLGRFQTFEGDLKWHHHNITYWIQNYSEDLPRAVIDDAFARAFALWSAVTPLTFTRVYSRDADIVIQFGVAEHGDGYPFDGKDGLLAHAFPPGPGIQGDAHFDDDELWSLGKGVVVPTRFGNADGAACHFPFIFEGRSYSACTTDGRSDGLPWCSTTANYDTDDRFGFCPSERLYTQDGNADGKPCQFPFIFQGQSYSACTTDGRSDGYRWCATTANYDRDKLFGFCPTRADSTVMGGNSAGELCVFPFTFLGKEYSTCTSEGRGDGRLWCATTSNFDSDKKWGFCPDQGYSLFLVAAHEFGHALGLDHSSVPEALMYPMYRFTEGPPLHKDDVNGIRHLYGPRPEPEPRPPTTTTPQPTAPPTVCPTGPPTVHPSERPTAGPTGPPSAGPTGPPTAGPSTATTVPLSPVDDACNVNIFDAIAEIGNQLYLFKDGKYWRFSEGRGSRPQGPFLIADKWPALPRKLDSVFEERLSKKLFFFSGRQVWVYTGASVLGPRRLDKLGLGADVAQVTGALRSGRGKMLLFSGRRLWRFDVKAQMVDPRSASEVDRMFPGVPLDTHDVFQYREKAYFCQDRFYWRVSSRSELNQVDQVGYVTYDILQCPED"},
	}
}

func (s *S) TestReplaceSecondRecord(c *check.C) {
	in := pair()
	got, err := Replace{Index: Second, Sequence: replacement}.Apply("TIMP3_v_MMP9_C_AGESNA.fasta", in)
	c.Assert(err, check.Equals, nil)
	c.Check(got, check.HasLen, 2)
	c.Check(got[0], check.DeepEquals, in[0])
	c.Check(got[1].Header, check.Equals, "MMP9_HUMAN|P14780")
	c.Check(got[1].Sequence, check.Equals, replacement)

	// The input is never modified.
	c.Check(in, check.DeepEquals, pair())
}

func (s *S) TestReplaceLocality(c *check.C) {
	in := fastarec.File{
		{Header: "a", Sequence: "AAA"},
		{Header: "b", Sequence: "BBB"},
		{Header: "c", Sequence: "CCC"},
		{Header: "d", Sequence: "DDD"},
	}
	for idx := range in {
		got, err := Replace{Index: idx, Sequence: "XYZ"}.Apply("f.fasta", in)
		c.Assert(err, check.Equals, nil)
		for i := range in {
			if i == idx {
				c.Check(got[i], check.Equals, fastarec.Record{Header: in[i].Header, Sequence: "XYZ"})
			} else {
				c.Check(got[i], check.Equals, in[i], check.Commentf("index %d record %d", idx, i))
			}
		}
	}
}

func (s *S) TestReplaceErrors(c *check.C) {
	one := fastarec.File{{Header: "only", Sequence: "MKV"}}
	_, err := Replace{Index: Second, Sequence: "X"}.Apply("one.fasta", one)
	c.Check(errors.Is(err, ErrTooFewRecords), check.Equals, true)

	_, err = Replace{Index: -1, Sequence: "X"}.Apply("one.fasta", one)
	c.Check(errors.Is(err, ErrTooFewRecords), check.Equals, true)

	_, err = Replace{Index: 0}.Apply("one.fasta", one)
	c.Check(err, check.Equals, ErrEmptyReplacement)
}

func (s *S) TestVariant(c *check.C) {
	wt := "CTCSPSHPQDAFCNSDIVIRAKVVGKKLVKEGPFGTLVYTIKQMKMYRGFTKMPHVQYIHTEASESLCGLKLEVNKYQYLLTGRVYDGKMYTGLCNFVERW"
	for i, t := range []struct {
		start, length int
		motif         string
	}{
		{start: 62, length: 6, motif: "AGESNA"},
		{start: 62, length: 6, motif: "YS"},
		{start: 62, length: 6, motif: "YKEDPDQQ"},
		{start: 0, length: 3, motif: "M"},
		{start: len(wt) - 2, length: 2, motif: ""},
		{start: 10, length: 0, motif: "GGG"},
		{start: len(wt), length: 0, motif: "K"},
	} {
		v, err := Variant(wt, t.start, t.length, t.motif)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(len(v), check.Equals, len(wt)-t.length+len(t.motif), check.Commentf("Test %d", i))
		c.Check(v[:t.start], check.Equals, wt[:t.start], check.Commentf("Test %d", i))
		c.Check(v[t.start+len(t.motif):], check.Equals, wt[t.start+t.length:], check.Commentf("Test %d", i))
		c.Check(v[t.start:t.start+len(t.motif)], check.Equals, t.motif, check.Commentf("Test %d", i))
	}

	v, err := Variant("ACDEFG", 2, 2, "XYZ")
	c.Check(err, check.Equals, nil)
	c.Check(v, check.Equals, "ACXYZFG")

	seg, err := Segment(wt, 62, 6)
	c.Check(err, check.Equals, nil)
	c.Check(seg, check.Equals, "ASESLC")

	seg, err = Segment(wt, 5, 0)
	c.Check(err, check.Equals, nil)
	c.Check(seg, check.Equals, "")

	for _, w := range [][2]int{{-1, 2}, {0, len(wt) + 1}, {len(wt), 1}, {3, -1}} {
		_, err := Variant(wt, w[0], w[1], "A")
		c.Check(errors.Is(err, ErrOutOfRange), check.Equals, true, check.Commentf("window %v", w))
		_, err = Segment(wt, w[0], w[1])
		c.Check(errors.Is(err, ErrOutOfRange), check.Equals, true, check.Commentf("window %v", w))
	}
}

func (s *S) TestSplice(c *check.C) {
	in := fastarec.File{
		{Header: "template", Sequence: "AAAAASESLCAAAA"},
		{Header: "target", Sequence: "MMMM"},
	}
	got, err := Splice{Index: 0, Start: 4, Length: 6, Motif: "YKEDPD"}.Apply("t.fasta", in)
	c.Assert(err, check.Equals, nil)
	c.Check(got[0], check.Equals, fastarec.Record{Header: "template", Sequence: "AAAAYKEDPDAAAA"})
	c.Check(got[1], check.Equals, in[1])
	c.Check(in[0].Sequence, check.Equals, "AAAAASESLCAAAA")

	_, err = Splice{Index: 1, Start: 2, Length: 6, Motif: "X"}.Apply("t.fasta", in)
	c.Check(errors.Is(err, ErrOutOfRange), check.Equals, true)

	_, err = Splice{Index: 2, Start: 0, Length: 1, Motif: "X"}.Apply("t.fasta", in)
	c.Check(errors.Is(err, ErrTooFewRecords), check.Equals, true)
}

func (s *S) TestComposite(c *check.C) {
	in := fastarec.File{
		{Header: "TIMP3_VARIANT_WT_HUMAN|P35625", Sequence: "MKV"},
		{Header: "MMP9_HUMAN|P14780:MMP2_HUMAN|P08253", Sequence: "QRS"},
	}
	for i, t := range []struct {
		rule   Composite
		header string
	}{
		{
			rule:   Composite{Replace: Replace{Index: Second, Sequence: "YNF"}},
			header: "MMP9_HUMAN|P14780:MMP2_HUMAN|P08253",
		},
		{
			rule:   Composite{Replace: Replace{Index: Second, Sequence: "YNF"}, RebuildHeader: true},
			header: "MMP9_HUMAN|P14780",
		},
		{
			rule:   Composite{Replace: Replace{Index: Second, Sequence: "YNF"}, RebuildHeader: true, Label: "CD"},
			header: "MMP9_HUMAN|P14780:CD",
		},
	} {
		got, err := t.rule.Apply("complex_x.fasta", in)
		c.Assert(err, check.Equals, nil)
		c.Check(got[0], check.Equals, in[0], check.Commentf("Test %d", i))
		c.Check(got[1], check.Equals, fastarec.Record{Header: t.header, Sequence: "YNF"}, check.Commentf("Test %d", i))
	}
	c.Check(in[1].Header, check.Equals, "MMP9_HUMAN|P14780:MMP2_HUMAN|P08253")
}

func (s *S) TestCompositeFallback(c *check.C) {
	var buf bytes.Buffer
	l := log.New(&buf)
	in := pair()
	rule := Composite{Replace: Replace{Index: Second, Sequence: "YNF"}, RebuildHeader: true, Logger: l}
	got, err := rule.Apply("complex_TIMP3_v_MMP9_C_WT.fasta", in)
	c.Assert(err, check.Equals, nil)
	c.Check(got[1], check.Equals, fastarec.Record{Header: in[1].Header, Sequence: "YNF"})
	c.Check(strings.Contains(buf.String(), "no chain delimiter"), check.Equals, true, check.Commentf("log: %q", buf.String()))
}

func (s *S) TestByPrefix(c *check.C) {
	var buf bytes.Buffer
	rule := ByPrefix{
		Prefix:  ComplexPrefix,
		Match:   Composite{Replace: Replace{Index: Second, Sequence: "CCC"}, RebuildHeader: true, Logger: log.New(&buf)},
		Default: Replace{Index: Second, Sequence: "DDD"},
	}
	in := fastarec.File{{Header: "a", Sequence: "A"}, {Header: "b:c", Sequence: "B"}}

	got, err := rule.Apply("complex_pair.fasta", in)
	c.Assert(err, check.Equals, nil)
	c.Check(got[1], check.Equals, fastarec.Record{Header: "b", Sequence: "CCC"})

	got, err = rule.Apply("pair.fasta", in)
	c.Assert(err, check.Equals, nil)
	c.Check(got[1], check.Equals, fastarec.Record{Header: "b:c", Sequence: "DDD"})
}

func (s *S) TestRuleFunc(c *check.C) {
	var seen string
	r := RuleFunc(func(name string, f fastarec.File) (fastarec.File, error) {
		seen = name
		return f, nil
	})
	_, err := r.Apply("x.fa", nil)
	c.Check(err, check.Equals, nil)
	c.Check(seen, check.Equals, "x.fa")
}
