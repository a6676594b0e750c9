// SPDX-License-Identifier: MIT

package genome

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvhmm/hmm"
)

// Corpus is an ordered list of annotated sequences over one genome.
type Corpus struct {
	Sequences []*Sequence
}

// ReadCorpus parses one sequence description per line. Blank lines and
// lines starting with '#' are skipped.
func ReadCorpus(r io.Reader) (*Corpus, error) {
	c := &Corpus{}
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seq, err := ParseSequence(line)
		if err != nil {
			return nil, fmt.Errorf("ReadCorpus: line %d: %w", n, err)
		}
		c.Sequences = append(c.Sequences, seq)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadCorpus: %w", err)
	}

	return c, nil
}

// ParseCorpus is ReadCorpus over a string.
func ParseCorpus(text string) (*Corpus, error) {
	return ReadCorpus(strings.NewReader(text))
}

// Paths labels every sequence against dna with one shared Labeler, so equal
// codons map to equal labels across sequences. Each sequence is its own path.
func (c *Corpus) Paths(dna []Base) ([][]hmm.Point[Label, Base], error) {
	l := NewLabeler()
	out := make([][]hmm.Point[Label, Base], 0, len(c.Sequences))
	for i, seq := range c.Sequences {
		path, err := l.Label(seq, dna)
		if err != nil {
			return nil, fmt.Errorf("Paths: sequence %d: %w", i, err)
		}
		out = append(out, path)
	}

	return out, nil
}

// Train labels the corpus and estimates a gene model from it.
func (c *Corpus) Train(dna []Base, opts ...hmm.TrainOption[Label]) (*hmm.Model[Label, Base], error) {
	paths, err := c.Paths(dna)
	if err != nil {
		return nil, err
	}

	return hmm.Train(paths, opts...)
}
