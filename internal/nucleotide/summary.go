package nucleotide

import (
	"github.com/seqdiff/seqdiff/internal/compare"
	"github.com/seqdiff/seqdiff/internal/seq"
)

// ComparisonStats classifies every mismatching position between a reference
// and one variant. Matching positions are not counted in any bucket.
type ComparisonStats struct {
	Header string

	Transitions   int
	Transversions int
	Gaps          int
	Ambiguous     int

	// Ratio is transitions over transversions. RatioValid is false when
	// there are no transversions; the ratio is undefined then, not zero.
	Ratio      float64
	RatioValid bool

	Identity float64
	// GCDelta is the variant's GC content minus the reference's.
	GCDelta float64
}

func isPurine(c byte) bool {
	return c == 'A' || c == 'G'
}

func isPyrimidine(c byte) bool {
	return c == 'C' || c == 'T'
}

// SummarizePair classifies the substitutions between a reference and one
// variant. Both are normalized; the shorter sequence reads as gap-padded.
func SummarizePair(reference, variant, header string) ComparisonStats {
	ref := seq.Normalize(reference, seq.Nucleotide)
	v := seq.Normalize(variant, seq.Nucleotide)

	maxLen := len(ref)
	if len(v) > maxLen {
		maxLen = len(v)
	}

	stats := ComparisonStats{Header: header}

	for i := 0; i < maxLen; i++ {
		refChar := seq.Gap
		if i < len(ref) {
			refChar = ref[i]
		}
		varChar := seq.Gap
		if i < len(v) {
			varChar = v[i]
		}

		if refChar == varChar {
			continue
		}

		switch {
		case refChar == seq.Gap || varChar == seq.Gap:
			stats.Gaps++
		case (isPurine(refChar) || isPyrimidine(refChar)) &&
			(isPurine(varChar) || isPyrimidine(varChar)):
			if isPurine(refChar) == isPurine(varChar) {
				stats.Transitions++
			} else {
				stats.Transversions++
			}
		default:
			stats.Ambiguous++
		}
	}

	if stats.Transversions > 0 {
		stats.Ratio = float64(stats.Transitions) / float64(stats.Transversions)
		stats.RatioValid = true
	}

	stats.Identity = compare.Pairwise(ref, v, seq.Nucleotide).Identity
	stats.GCDelta = CalculateStats(v, "").GCContent - CalculateStats(ref, "").GCContent

	return stats
}

// SummarizeAlignment summarizes every variant against the reference,
// preserving input order.
func SummarizeAlignment(reference seq.Entry, variants []seq.Entry) []ComparisonStats {
	out := make([]ComparisonStats, len(variants))
	for i, v := range variants {
		out[i] = SummarizePair(reference.Sequence, v.Sequence, v.Header)
	}
	return out
}
