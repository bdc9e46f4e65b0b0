package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqdiff/seqdiff/internal/compare"
	"github.com/seqdiff/seqdiff/internal/seq"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() *compare.Result {
	return &compare.Result{
		Type:      seq.Protein,
		Reference: &seq.Entry{Header: "KRAS", Sequence: "MTEYKLVVVGAGGVGKS"},
		Variants: []compare.VariantComparison{
			{
				Header:      "G12C",
				Sequence:    "MTEYKLVVVGACGVGKS",
				Differences: []string{"G12C"},
				Residues:    []int{12},
				Identity:    94.1,
			},
			{
				Header:   "wildtype",
				Sequence: "MTEYKLVVVGAGGVGKS",
				Identity: 100,
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLookupRun(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteResult("batch-1", sampleResult()))

	rows, err := s.LookupRun("batch-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by variant header.
	assert.Equal(t, "G12C", rows[0].Variant)
	assert.Equal(t, "KRAS", rows[0].Reference)
	assert.Equal(t, "protein", rows[0].SequenceType)
	assert.Equal(t, int64(1), rows[0].DifferenceCount)
	assert.Equal(t, "G12C", rows[0].Mutations)
	assert.InDelta(t, 94.1, rows[0].Identity, 0.001)

	assert.Equal(t, "wildtype", rows[1].Variant)
	assert.Equal(t, int64(0), rows[1].DifferenceCount)
	assert.Equal(t, "", rows[1].Mutations)
}

func TestWriteResult_DeduplicatesVariants(t *testing.T) {
	s := openInMemory(t)

	result := sampleResult()
	result.Variants = append(result.Variants, result.Variants[0])
	require.NoError(t, s.WriteResult("dup", result))

	rows, err := s.LookupRun("dup")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWriteResult_RejectsMultiAlignment(t *testing.T) {
	s := openInMemory(t)
	err := s.WriteResult("bad", &compare.Result{NoReference: true})
	assert.Error(t, err)
}

func TestListRuns(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteResult("run-a", sampleResult()))
	require.NoError(t, s.WriteResult("run-b", sampleResult()))

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.Equal(t, int64(2), r.Variants)
		assert.NotEmpty(t, r.Created)
	}
}

func TestLookupRun_Missing(t *testing.T) {
	s := openInMemory(t)
	rows, err := s.LookupRun("nope")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClearRuns(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteResult("run", sampleResult()))
	require.NoError(t, s.ClearRuns())

	runs, err := s.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
