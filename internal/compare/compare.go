// Package compare implements pairwise and multi-sequence comparison of
// validated sequences.
package compare

import (
	"fmt"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// VariantComparison is the position-by-position diff of one variant against
// the reference. Derived values are recomputed on every run and never
// mutated afterward.
type VariantComparison struct {
	Header   string
	Sequence string
	// Differences holds one token per mismatching position, formatted
	// "<refChar><1-based pos><variantChar>", in scan order.
	Differences []string
	// Residues holds the 1-based positions of the differences, in scan order.
	Residues []int
	// Identity is the percentage of matching non-gap positions over the
	// longer sequence.
	Identity float64
}

// Pairwise diffs a variant against a reference. Both inputs are normalized
// first. Positions beyond a sequence's length read as gaps, so a single
// inserted base shifts every downstream position into a difference; that is
// the intended ungapped behavior, not an optimal alignment.
func Pairwise(reference, variant string, t seq.Type) VariantComparison {
	ref := seq.Normalize(reference, t)
	v := seq.Normalize(variant, t)

	maxLen := len(ref)
	if len(v) > maxLen {
		maxLen = len(v)
	}

	result := VariantComparison{Sequence: v}
	matches := 0

	for i := 0; i < maxLen; i++ {
		refChar := seq.Gap
		if i < len(ref) {
			refChar = ref[i]
		}
		varChar := seq.Gap
		if i < len(v) {
			varChar = v[i]
		}

		if refChar != varChar {
			result.Differences = append(result.Differences,
				fmt.Sprintf("%c%d%c", refChar, i+1, varChar))
			result.Residues = append(result.Residues, i+1)
		} else if refChar != seq.Gap {
			matches++
		}
	}

	if maxLen > 0 {
		result.Identity = float64(matches) / float64(maxLen) * 100
	}

	return result
}
