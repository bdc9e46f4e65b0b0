package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqdiff/seqdiff/internal/compare"
	"github.com/seqdiff/seqdiff/internal/seq"
)

func TestTabWriter_WriteResult(t *testing.T) {
	result := &compare.Result{
		Type:      seq.Protein,
		Reference: &seq.Entry{Header: "ref", Sequence: "MKVA"},
		Variants: []compare.VariantComparison{
			{
				Header:      "v1",
				Sequence:    "MKLA",
				Differences: []string{"V3L"},
				Residues:    []int{3},
				Identity:    75,
			},
			{
				Header:   "v2",
				Sequence: "MKVA",
				Identity: 100,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTabWriter(&buf).WriteResult(result))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#Variant\t"))
	assert.Equal(t, "v1\t4\t75.0\t1\tV3L\t3", lines[1])
	assert.Equal(t, "v2\t4\t100.0\t0\t-\t-", lines[2])
}

func TestTabWriter_MultipleDifferencesCommaJoined(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)
	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Write(compare.VariantComparison{
		Header:      "v",
		Sequence:    "GKIA",
		Differences: []string{"M1G", "V3I"},
		Residues:    []int{1, 3},
		Identity:    50,
	}))
	require.NoError(t, tw.Flush())

	assert.Contains(t, buf.String(), "M1G,V3I")
	assert.Contains(t, buf.String(), "1,3")
}
