package compare

import (
	"sort"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// MutationSite aggregates how often a reference position mutated across a
// set of variants, and into which residues. Consumed by external script
// generators (e.g. PyMOL selection macros).
type MutationSite struct {
	// Position is 1-based in the reference.
	Position int
	// ReferenceResidue is the reference character at the position.
	ReferenceResidue byte
	// VariantResidues lists the distinct characters observed at the
	// position across variants, sorted for stable output.
	VariantResidues []byte
	// Occurrences is the number of variants that differ at the position.
	Occurrences int
	// Frequency is Occurrences divided by the number of variants.
	Frequency float64
}

// AggregateMutations collapses per-variant differences into per-position
// mutation frequencies. Sites are returned in ascending position order.
func AggregateMutations(reference string, variants []VariantComparison) []MutationSite {
	if len(variants) == 0 {
		return nil
	}

	type siteAccum struct {
		refResidue byte
		residues   map[byte]bool
		count      int
	}
	sites := make(map[int]*siteAccum)

	for _, v := range variants {
		for _, pos := range v.Residues {
			refChar := seq.Gap
			if pos-1 < len(reference) {
				refChar = reference[pos-1]
			}
			varChar := seq.Gap
			if pos-1 < len(v.Sequence) {
				varChar = v.Sequence[pos-1]
			}

			acc, ok := sites[pos]
			if !ok {
				acc = &siteAccum{refResidue: refChar, residues: make(map[byte]bool)}
				sites[pos] = acc
			}
			acc.residues[varChar] = true
			acc.count++
		}
	}

	positions := make([]int, 0, len(sites))
	for pos := range sites {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	out := make([]MutationSite, 0, len(positions))
	for _, pos := range positions {
		acc := sites[pos]
		residues := make([]byte, 0, len(acc.residues))
		for c := range acc.residues {
			residues = append(residues, c)
		}
		sort.Slice(residues, func(i, j int) bool { return residues[i] < residues[j] })

		out = append(out, MutationSite{
			Position:         pos,
			ReferenceResidue: acc.refResidue,
			VariantResidues:  residues,
			Occurrences:      acc.count,
			Frequency:        float64(acc.count) / float64(len(variants)),
		})
	}

	return out
}
