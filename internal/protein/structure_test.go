package protein

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictSecondaryStructure_SumsTo100(t *testing.T) {
	sequences := []string{
		"MTEYKLVVVGAGGVGKSALTIQLIQNH",
		"AAAA",
		"VVVV",
		"GGGG",
		"MKVLIEDS",
	}
	for _, s := range sequences {
		ss := PredictSecondaryStructure(s)
		total := ss.Helix + ss.Sheet + ss.Coil
		assert.InDelta(t, 100.0, total, 0.2, "sum for %q", s)
		assert.GreaterOrEqual(t, ss.Helix, 0.0)
		assert.GreaterOrEqual(t, ss.Sheet, 0.0)
		assert.GreaterOrEqual(t, ss.Coil, 0.0)
	}
}

func TestPredictSecondaryStructure_PolyAla(t *testing.T) {
	// A has helix propensity 1.42 and sheet 0.83.
	ss := PredictSecondaryStructure("AAAA")
	assert.InDelta(t, (1.42-0.9)*60, ss.Helix, 0.05)
	assert.Equal(t, 0.0, ss.Sheet)
}

func TestPredictSecondaryStructure_PolyVal(t *testing.T) {
	// V favors sheet (1.70) over helix (1.06).
	ss := PredictSecondaryStructure("VVVV")
	assert.Greater(t, ss.Sheet, ss.Helix)
	assert.InDelta(t, (1.70-0.9)*50, ss.Sheet, 0.05)
}

func TestPredictSecondaryStructure_UnknownResiduesNeutral(t *testing.T) {
	// Propensity 1.0 maps to helix 6.0 and sheet 5.0.
	ss := PredictSecondaryStructure("XXXX")
	assert.InDelta(t, 6.0, ss.Helix, 0.05)
	assert.InDelta(t, 5.0, ss.Sheet, 0.05)
	assert.InDelta(t, 89.0, ss.Coil, 0.05)
}

func TestPredictSecondaryStructure_OneDecimal(t *testing.T) {
	ss := PredictSecondaryStructure("MTEYKLVVVGAGG")
	for _, v := range []float64{ss.Helix, ss.Sheet, ss.Coil} {
		assert.InDelta(t, v, math.Round(v*10)/10, 1e-9, "value %f rounded to one decimal", v)
	}
}

func TestPredictSecondaryStructure_GapsStripped(t *testing.T) {
	assert.Equal(t,
		PredictSecondaryStructure("AAAA"),
		PredictSecondaryStructure("A-A-A-A-"))
}

func TestPredictSecondaryStructure_Empty(t *testing.T) {
	assert.Equal(t, SecondaryStructure{}, PredictSecondaryStructure(""))
}
