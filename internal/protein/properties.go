// Package protein estimates physicochemical properties of amino-acid
// sequences. The estimates are deliberately coarse single-residue
// heuristics; they trade accuracy for predictability and speed.
package protein

import (
	"strings"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// Average residue masses of the free amino acids, in daltons.
var residueWeights = map[byte]float64{
	'A': 89.09, 'R': 174.20, 'N': 132.12, 'D': 133.10,
	'C': 121.16, 'E': 147.13, 'Q': 146.15, 'G': 75.07,
	'H': 155.16, 'I': 131.17, 'L': 131.17, 'K': 146.19,
	'M': 149.21, 'F': 165.19, 'P': 115.13, 'S': 105.09,
	'T': 119.12, 'W': 204.23, 'Y': 181.19, 'V': 117.15,
}

// Kyte-Doolittle hydropathy values.
var hydropathy = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5,
	'C': 2.5, 'E': -3.5, 'Q': -3.5, 'G': -0.4,
	'H': -3.2, 'I': 4.5, 'L': 3.8, 'K': -3.9,
	'M': 1.9, 'F': 2.8, 'P': -1.6, 'S': -0.8,
	'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// waterMass is lost per peptide bond when residues condense.
const waterMass = 18.015

// Properties is a derived snapshot of one sequence, recomputed on demand.
type Properties struct {
	Length           int
	MolecularWeight  float64
	GRAVY            float64
	IsoelectricPoint float64
	InstabilityIndex float64
	NetCharge        float64
}

// stripGaps normalizes and removes gap characters.
func stripGaps(sequence string) string {
	s := seq.Normalize(sequence, seq.Protein)
	return strings.ReplaceAll(s, string(seq.Gap), "")
}

// Calculate estimates the physicochemical properties of a sequence. Gaps
// are stripped first. Unknown residues (B, X, Z, stop) contribute zero
// weight and zero hydropathy rather than failing, so pre-validated
// ambiguity codes are safe.
func Calculate(sequence string) Properties {
	s := stripGaps(sequence)

	props := Properties{Length: len(s)}
	if len(s) == 0 {
		return props
	}

	var weight, hydroSum float64
	var positive, negative, proGly int

	for i := 0; i < len(s); i++ {
		c := s[i]
		weight += residueWeights[c]
		hydroSum += hydropathy[c]
		switch c {
		case 'K', 'R', 'H':
			positive++
		case 'D', 'E':
			negative++
		}
		if c == 'P' || c == 'G' {
			proGly++
		}
	}

	props.MolecularWeight = weight - float64(len(s)-1)*waterMass
	props.GRAVY = hydroSum / float64(len(s))

	// Coarse pI estimate from the charged-residue ratio, not a
	// Henderson-Hasselbalch titration.
	ratio := float64(positive) / float64(negative+1)
	props.IsoelectricPoint = 6.5 + (ratio-1)*2

	// Coarse instability estimate: flexible residues P and G score 10 each.
	props.InstabilityIndex = float64(proGly*10) / float64(len(s)) * 100

	props.NetCharge = NetCharge(s, 7.0)

	return props
}

// NetCharge estimates charge at a given pH: +1 per K/R, -1 per D/E, and
// +0.5 per H only below pH 6.5. At the usual pH 7 call site the histidine
// term never fires; the parameter is kept so acidic-pH callers get it.
func NetCharge(sequence string, pH float64) float64 {
	var charge float64
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'K', 'R':
			charge++
		case 'D', 'E':
			charge--
		case 'H':
			if pH < 6.5 {
				charge += 0.5
			}
		}
	}
	return charge
}
