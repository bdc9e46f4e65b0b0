// Package nucleotide provides composition statistics, substitution
// classification and codon translation for DNA sequences.
package nucleotide

import "github.com/seqdiff/seqdiff/internal/seq"

// SequenceStats is a read-only composition snapshot of one sequence.
type SequenceStats struct {
	Header string
	Length int

	A, C, G, T, N int
	// Others counts characters outside A/C/G/T/N, including ambiguity
	// codes and gaps.
	Others int

	GCContent float64
	ATContent float64
	GCSkew    float64
}

// CalculateStats tallies base composition for a sequence. The input is
// normalized first; unexpected characters land in Others rather than
// failing, so pre-validated ambiguity codes are safe.
func CalculateStats(sequence, header string) SequenceStats {
	s := seq.Normalize(sequence, seq.Nucleotide)

	stats := SequenceStats{Header: header, Length: len(s)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			stats.A++
		case 'C':
			stats.C++
		case 'G':
			stats.G++
		case 'T':
			stats.T++
		case 'N':
			stats.N++
		default:
			stats.Others++
		}
	}

	if stats.Length > 0 {
		stats.GCContent = float64(stats.G+stats.C) / float64(stats.Length) * 100
		stats.ATContent = float64(stats.A+stats.T) / float64(stats.Length) * 100
	}

	// Skew denominator floors at 1 so a G+C free sequence reports 0.
	gc := stats.G + stats.C
	denom := gc
	if denom == 0 {
		denom = 1
	}
	stats.GCSkew = float64(stats.G-stats.C) / float64(denom)

	return stats
}
