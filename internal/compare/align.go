package compare

import (
	"strings"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// MultiAlign normalizes every sequence and right-pads each with gaps to the
// length of the longest. There is no interior gap insertion or column
// optimization; the output exists to support column-aligned display and
// consensus derivation. An empty input yields an empty output.
func MultiAlign(sequences []string, t seq.Type) []string {
	if len(sequences) == 0 {
		return nil
	}

	normalized := make([]string, len(sequences))
	maxLen := 0
	for i, s := range sequences {
		normalized[i] = seq.Normalize(s, t)
		if len(normalized[i]) > maxLen {
			maxLen = len(normalized[i])
		}
	}

	for i, s := range normalized {
		if len(s) < maxLen {
			normalized[i] = s + strings.Repeat(string(seq.Gap), maxLen-len(s))
		}
	}

	return normalized
}

// Consensus returns the per-column majority character across equal-length
// sequences. Ties go to the character that first reached the winning count
// in a left-to-right scan of the column.
func Consensus(aligned []string) string {
	if len(aligned) == 0 {
		return ""
	}

	length := len(aligned[0])
	var b strings.Builder
	b.Grow(length)

	for col := 0; col < length; col++ {
		counts := make(map[byte]int)
		best := byte(0)
		bestCount := 0
		for _, s := range aligned {
			c := s[col]
			counts[c]++
			if counts[c] > bestCount {
				bestCount = counts[c]
				best = c
			}
		}
		b.WriteByte(best)
	}

	return b.String()
}
