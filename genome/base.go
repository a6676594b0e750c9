// SPDX-License-Identifier: MIT

package genome

import (
	"fmt"
	"unicode"
)

// Base is one DNA nucleotide.
type Base uint8

const (
	A Base = iota
	C
	T
	G
)

var baseNames = [...]string{A: "A", C: "C", T: "T", G: "G"}

func (b Base) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}

	return fmt.Sprintf("Base(%d)", uint8(b))
}

// ParseBase maps 'a', 'c', 't', 'g' (either case) to a Base.
func ParseBase(r rune) (Base, error) {
	switch unicode.ToLower(r) {
	case 'a':
		return A, nil
	case 'c':
		return C, nil
	case 't':
		return T, nil
	case 'g':
		return G, nil
	}

	return 0, fmt.Errorf("ParseBase(%q): %w", r, ErrInvalidBase)
}

// ParseBases parses a DNA string. Whitespace (line breaks in wrapped
// sequence files) is skipped; the error reports the byte offset of the first bad base.
func ParseBases(s string) ([]Base, error) {
	out := make([]Base, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b, err := ParseBase(r)
		if err != nil {
			return nil, fmt.Errorf("ParseBases: offset %d: %w", i, err)
		}
		out = append(out, b)
	}

	return out, nil
}
