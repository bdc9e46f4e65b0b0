package protein

import "math"

// Chou-Fasman helix propensities.
var helixPropensity = map[byte]float64{
	'A': 1.42, 'R': 0.98, 'N': 0.67, 'D': 1.01,
	'C': 0.70, 'E': 1.51, 'Q': 1.11, 'G': 0.57,
	'H': 1.00, 'I': 1.08, 'L': 1.21, 'K': 1.16,
	'M': 1.45, 'F': 1.13, 'P': 0.57, 'S': 0.77,
	'T': 0.83, 'W': 1.08, 'Y': 0.69, 'V': 1.06,
}

// Chou-Fasman beta-sheet propensities.
var sheetPropensity = map[byte]float64{
	'A': 0.83, 'R': 0.93, 'N': 0.89, 'D': 0.54,
	'C': 1.19, 'E': 0.37, 'Q': 1.10, 'G': 0.75,
	'H': 0.87, 'I': 1.60, 'L': 1.30, 'K': 0.74,
	'M': 1.05, 'F': 1.38, 'P': 0.55, 'S': 0.75,
	'T': 1.19, 'W': 1.37, 'Y': 1.47, 'V': 1.70,
}

// SecondaryStructure holds percentage estimates summing to 100.
type SecondaryStructure struct {
	Helix float64
	Sheet float64
	Coil  float64
}

// PredictSecondaryStructure maps whole-sequence average propensities to
// helix/sheet/coil percentages. This is a single-residue heuristic with no
// windowed smoothing; segment-level structure is out of scope. Unknown
// residues carry a neutral propensity of 1.0.
func PredictSecondaryStructure(sequence string) SecondaryStructure {
	s := stripGaps(sequence)
	if len(s) == 0 {
		return SecondaryStructure{}
	}

	var helixSum, sheetSum float64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if p, ok := helixPropensity[c]; ok {
			helixSum += p
		} else {
			helixSum += 1.0
		}
		if p, ok := sheetPropensity[c]; ok {
			sheetSum += p
		} else {
			sheetSum += 1.0
		}
	}

	n := float64(len(s))
	helix := math.Max(0, (helixSum/n-0.9)*60)
	sheet := math.Max(0, (sheetSum/n-0.9)*50)
	coil := 100 - helix - sheet

	// When the propensity mapping overshoots, rescale helix and sheet
	// proportionally to sum to 80 and pin coil at 20.
	if coil < 0 {
		scale := 80 / (helix + sheet)
		helix *= scale
		sheet *= scale
		coil = 20
	}

	return SecondaryStructure{
		Helix: round1(helix),
		Sheet: round1(sheet),
		Coil:  round1(coil),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
