// SPDX-License-Identifier: MIT

package genome

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvhmm/hmm"
)

// Range is a 0-based half-open interval [Start, End).
type Range struct {
	Start, End int
}

// Len is End-Start.
func (r Range) Len() int { return r.End - r.Start }

// Sequence is a stretch of genome with the genes it contains.
type Sequence struct {
	Start, End int
	Genes      []Range
}

type rangeClass uint8

const (
	classNonCoding rangeClass = iota
	classStart
	classInternal
	classStop
)

type labeledRange struct {
	Range
	class rangeClass
}

// ParseSequence parses one description line: the sequence bounds followed
// by gene bounds, all 1-based inclusive, e.g. "1\t2800\t[190, 255] [337, 2799]".
// Brackets and commas are ignored.
func ParseSequence(line string) (*Sequence, error) {
	terms := strings.FieldsFunc(line, func(r rune) bool {
		return r == '[' || r == ']' || r == ',' || r == ' ' || r == '\t'
	})
	if len(terms) < 2 || len(terms)%2 != 0 {
		return nil, fmt.Errorf("ParseSequence(%q): %d numbers: %w", line, len(terms), ErrMalformedSequence)
	}
	nums := make([]int, len(terms))
	for i, term := range terms {
		v, err := strconv.Atoi(term)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("ParseSequence(%q): term %q: %w", line, term, ErrMalformedSequence)
		}
		nums[i] = v
	}

	seq := &Sequence{Start: nums[0] - 1, End: nums[1]}
	for k := 2; k < len(nums); k += 2 {
		seq.Genes = append(seq.Genes, Range{Start: nums[k] - 1, End: nums[k+1]})
	}
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("ParseSequence(%q): %w", line, err)
	}

	return seq, nil
}

// String renders the 1-based inclusive form, e.g. "1-2800: [190, 255]".
func (s *Sequence) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d-%d:", s.Start+1, s.End)
	for _, g := range s.Genes {
		fmt.Fprintf(&sb, " [%d, %d]", g.Start+1, g.End)
	}

	return sb.String()
}

// Validate checks that genes are ordered, disjoint, inside the sequence,
// at least a start plus a stop codon long and a whole number of codons.
func (s *Sequence) Validate() error {
	if s.Start < 0 || s.End < s.Start {
		return fmt.Errorf("sequence %d-%d: %w", s.Start+1, s.End, ErrMalformedSequence)
	}
	prevEnd := s.Start
	for i, g := range s.Genes {
		switch {
		case g.Start < prevEnd || g.End > s.End:
			return fmt.Errorf("gene %d [%d, %d] outside %d-%d or overlapping: %w", i, g.Start+1, g.End, prevEnd+1, s.End, ErrInvalidGene)
		case g.Len() < 6 || g.Len()%3 != 0:
			return fmt.Errorf("gene %d [%d, %d] has %d bases: %w", i, g.Start+1, g.End, g.Len(), ErrInvalidGene)
		}
		prevEnd = g.End
	}

	return nil
}

// LabelDNA labels s with fresh codon instance tables. Use a shared Labeler
// to keep instance numbers consistent across sequences.
func (s *Sequence) LabelDNA(dna []Base) ([]hmm.Point[Label, Base], error) {
	return NewLabeler().Label(s, dna)
}

// labeledRanges splits s into non-empty noncoding, start, internal and stop
// ranges, ordered by start position.
func (s *Sequence) labeledRanges() []labeledRange {
	out := make([]labeledRange, 0, 4*len(s.Genes)+1)
	add := func(c rangeClass, start, end int) {
		if end > start {
			out = append(out, labeledRange{Range: Range{Start: start, End: end}, class: c})
		}
	}

	for _, r := range s.noncodingRanges() {
		add(classNonCoding, r.Start, r.End)
	}
	for _, g := range s.Genes {
		add(classStart, g.Start, g.Start+3)
		add(classInternal, g.Start+3, g.End-3)
		add(classStop, g.End-3, g.End)
	}
	slices.SortFunc(out, func(a, b labeledRange) int { return a.Start - b.Start })

	return out
}

// noncodingRanges lists the gaps before, between and after genes. A sequence
// without genes is one noncoding range.
func (s *Sequence) noncodingRanges() []Range {
	out := make([]Range, 0, len(s.Genes)+1)
	prev := s.Start
	for _, g := range s.Genes {
		out = append(out, Range{Start: prev, End: g.Start})
		prev = g.End
	}

	return append(out, Range{Start: prev, End: s.End})
}
