// Package genome turns annotated DNA into labeled training paths for package hmm.
//
// A Sequence describes a stretch of a genome and the genes inside it, as
// 1-based inclusive coordinates in text form ("1\t2800\t[190, 255] [337, 2799]")
// and 0-based half-open ranges in memory. LabelDNA splits the stretch into
// noncoding bases, start codons, internal codons and stop codons, and pairs
// every base with a Label:
//
//   - NonCoding for bases outside genes.
//   - StartCodon1..3 for the three bases of a gene's start codon.
//   - InternalCodon1..3 and StopCodon1..3 for the codon positions inside a
//     gene; their Instance numbers distinct codons (for example ACC and AAA
//     get different instances) in order of first appearance.
//
// A Labeler carries the codon instance tables, so every sequence labeled
// through the same Labeler (as Corpus.Paths does) shares one numbering and
// therefore one set of hidden states.
package genome
