package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqdiff/seqdiff/internal/seq"
)

func TestAggregateMutations(t *testing.T) {
	ref := "MKVA"
	variants := []VariantComparison{
		Pairwise(ref, "MKLA", seq.Protein), // V3L
		Pairwise(ref, "MKIA", seq.Protein), // V3I
		Pairwise(ref, "MKLG", seq.Protein), // V3L, A4G
	}

	sites := AggregateMutations(ref, variants)
	require.Len(t, sites, 2)

	v3 := sites[0]
	assert.Equal(t, 3, v3.Position)
	assert.Equal(t, byte('V'), v3.ReferenceResidue)
	assert.Equal(t, []byte{'I', 'L'}, v3.VariantResidues)
	assert.Equal(t, 3, v3.Occurrences)
	assert.InDelta(t, 1.0, v3.Frequency, 0.001)

	a4 := sites[1]
	assert.Equal(t, 4, a4.Position)
	assert.Equal(t, byte('A'), a4.ReferenceResidue)
	assert.Equal(t, []byte{'G'}, a4.VariantResidues)
	assert.Equal(t, 1, a4.Occurrences)
	assert.InDelta(t, 1.0/3.0, a4.Frequency, 0.001)
}

func TestAggregateMutations_NoVariants(t *testing.T) {
	assert.Nil(t, AggregateMutations("MKV", nil))
}

func TestAggregateMutations_IdenticalVariants(t *testing.T) {
	ref := "MKV"
	variants := []VariantComparison{
		Pairwise(ref, "MKV", seq.Protein),
		Pairwise(ref, "MKV", seq.Protein),
	}
	assert.Empty(t, AggregateMutations(ref, variants))
}

func TestAggregateMutations_VariantLongerThanReference(t *testing.T) {
	ref := "MK"
	variants := []VariantComparison{Pairwise(ref, "MKV", seq.Protein)}

	sites := AggregateMutations(ref, variants)
	require.Len(t, sites, 1)
	assert.Equal(t, 3, sites[0].Position)
	assert.Equal(t, byte(seq.Gap), sites[0].ReferenceResidue)
	assert.Equal(t, []byte{'V'}, sites[0].VariantResidues)
}
