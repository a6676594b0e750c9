// SPDX-License-Identifier: MIT

package genome

import (
	"fmt"

	"github.com/katalvlaran/lvhmm/hmm"
)

// LabelKind is the role a base plays in a gene model.
type LabelKind uint8

const (
	NonCoding LabelKind = iota
	StartCodon1
	StartCodon2
	StartCodon3
	InternalCodon1
	InternalCodon2
	InternalCodon3
	StopCodon1
	StopCodon2
	StopCodon3
)

var kindNames = [...]string{
	NonCoding:      "NonCoding",
	StartCodon1:    "StartCodon1",
	StartCodon2:    "StartCodon2",
	StartCodon3:    "StartCodon3",
	InternalCodon1: "InternalCodon1",
	InternalCodon2: "InternalCodon2",
	InternalCodon3: "InternalCodon3",
	StopCodon1:     "StopCodon1",
	StopCodon2:     "StopCodon2",
	StopCodon3:     "StopCodon3",
}

func (k LabelKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("LabelKind(%d)", uint8(k))
}

// Label is a hidden state: a kind plus, for internal and stop codons, the
// instance number of the codon the base belongs to. Instance is 0 for the
// other kinds.
type Label struct {
	Kind     LabelKind
	Instance int
}

func (l Label) String() string {
	switch l.Kind {
	case InternalCodon1, InternalCodon2, InternalCodon3, StopCodon1, StopCodon2, StopCodon3:
		return fmt.Sprintf("%s(%d)", l.Kind, l.Instance)
	}

	return l.Kind.String()
}

// codon is three consecutive bases.
type codon [3]Base

// codonTable numbers distinct codons in order of first appearance.
type codonTable map[codon]int

func (ct codonTable) instance(c codon) int {
	k, ok := ct[c]
	if !ok {
		k = len(ct)
		ct[c] = k
	}

	return k
}

// Labeler assigns labels while keeping codon instance numbers stable across calls.
type Labeler struct {
	internal codonTable
	stop     codonTable
}

// NewLabeler returns a Labeler with empty instance tables.
func NewLabeler() *Labeler {
	return &Labeler{internal: make(codonTable), stop: make(codonTable)}
}

// InternalCodons reports how many distinct internal codons have been numbered.
func (l *Labeler) InternalCodons() int { return len(l.internal) }

// StopCodons reports how many distinct stop codons have been numbered.
func (l *Labeler) StopCodons() int { return len(l.stop) }

// Label pairs every base of seq with its label. dna is indexed with the
// sequence's own (0-based) coordinates and must extend to at least seq.End.
func (l *Labeler) Label(seq *Sequence, dna []Base) ([]hmm.Point[Label, Base], error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	if len(dna) < seq.End {
		return nil, fmt.Errorf("Label(%s): %d bases: %w", seq, len(dna), ErrShortDNA)
	}

	out := make([]hmm.Point[Label, Base], 0, seq.End-seq.Start)
	for _, r := range seq.labeledRanges() {
		bases := dna[r.Start:r.End]
		switch r.class {
		case classNonCoding:
			for _, b := range bases {
				out = append(out, hmm.Point[Label, Base]{State: Label{Kind: NonCoding}, Obs: b})
			}
		case classStart:
			for i, b := range bases {
				out = append(out, hmm.Point[Label, Base]{State: Label{Kind: StartCodon1 + LabelKind(i)}, Obs: b})
			}
		case classInternal:
			out = appendCodons(out, bases, l.internal, InternalCodon1)
		case classStop:
			out = appendCodons(out, bases, l.stop, StopCodon1)
		}
	}

	return out, nil
}

// appendCodons labels bases codon by codon with first+0..2 and the codon's instance.
func appendCodons(out []hmm.Point[Label, Base], bases []Base, table codonTable, first LabelKind) []hmm.Point[Label, Base] {
	for k := 0; k+3 <= len(bases); k += 3 {
		c := codon{bases[k], bases[k+1], bases[k+2]}
		inst := table.instance(c)
		for i, b := range c {
			out = append(out, hmm.Point[Label, Base]{State: Label{Kind: first + LabelKind(i), Instance: inst}, Obs: b})
		}
	}

	return out
}
