package nucleotide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqdiff/seqdiff/internal/seq"
)

func TestSummarizePair_Classification(t *testing.T) {
	tests := []struct {
		name          string
		ref, variant  string
		transitions   int
		transversions int
		gaps          int
		ambiguous     int
	}{
		{"purine to purine is a transition", "A", "G", 1, 0, 0, 0},
		{"pyrimidine to pyrimidine is a transition", "C", "T", 1, 0, 0, 0},
		{"purine to pyrimidine is a transversion", "A", "C", 0, 1, 0, 0},
		{"pyrimidine to purine is a transversion", "T", "G", 0, 1, 0, 0},
		{"gap on variant side", "A", "-", 0, 0, 1, 0},
		{"gap on reference side", "-", "A", 0, 0, 1, 0},
		{"length mismatch pads as gap", "ACG", "AC", 0, 0, 1, 0},
		{"ambiguity code", "A", "N", 0, 0, 0, 1},
		{"ambiguity on reference side", "R", "C", 0, 0, 0, 1},
		{"matches skipped entirely", "ACGT", "ACGT", 0, 0, 0, 0},
		{"mixed", "AACGT", "GGCTT", 2, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizePair(tt.ref, tt.variant, "v")
			assert.Equal(t, tt.transitions, got.Transitions, "transitions")
			assert.Equal(t, tt.transversions, got.Transversions, "transversions")
			assert.Equal(t, tt.gaps, got.Gaps, "gaps")
			assert.Equal(t, tt.ambiguous, got.Ambiguous, "ambiguous")
		})
	}
}

func TestSummarizePair_RatioUndefinedWithoutTransversions(t *testing.T) {
	got := SummarizePair("AACC", "GGTT", "v")
	assert.Equal(t, 4, got.Transitions)
	assert.Equal(t, 0, got.Transversions)
	assert.False(t, got.RatioValid, "ratio must be undefined, not zero or infinity")
	assert.Equal(t, 0.0, got.Ratio)
}

func TestSummarizePair_Ratio(t *testing.T) {
	got := SummarizePair("AACA", "GGCC", "v")
	require.True(t, got.RatioValid)
	assert.InDelta(t, 2.0, got.Ratio, 0.001)
}

func TestSummarizePair_IdentityAndGCDelta(t *testing.T) {
	got := SummarizePair("ATAT", "GCAT", "v")
	assert.InDelta(t, 50.0, got.Identity, 0.001)
	// Variant GC 50%, reference GC 0%.
	assert.InDelta(t, 50.0, got.GCDelta, 0.001)
}

func TestSummarizeAlignment_PreservesOrder(t *testing.T) {
	ref := seq.Entry{Header: "ref", Sequence: "ACGT"}
	variants := []seq.Entry{
		{Header: "b", Sequence: "ACGA"},
		{Header: "a", Sequence: "ACGT"},
	}

	got := SummarizeAlignment(ref, variants)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Header)
	assert.Equal(t, "a", got[1].Header)
}
