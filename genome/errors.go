// SPDX-License-Identifier: MIT

package genome

import "errors"

var (
	// ErrInvalidBase is returned for a character outside {A, C, T, G} (any case).
	ErrInvalidBase = errors.New("genome: invalid DNA base")

	// ErrMalformedSequence is returned when a sequence description cannot be parsed.
	ErrMalformedSequence = errors.New("genome: malformed sequence description")

	// ErrInvalidGene is returned for genes that are out of bounds, overlapping,
	// shorter than a start plus a stop codon, or not a whole number of codons.
	ErrInvalidGene = errors.New("genome: invalid gene range")

	// ErrShortDNA is returned when the DNA does not cover the sequence being labeled.
	ErrShortDNA = errors.New("genome: DNA shorter than sequence")
)
