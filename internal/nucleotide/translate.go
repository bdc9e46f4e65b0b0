package nucleotide

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// ErrInvalidFrame is returned when a reading frame outside {0,1,2} is requested.
var ErrInvalidFrame = errors.New("invalid reading frame")

// Standard genetic code: DNA codon to amino acid (single letter).
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate reads non-overlapping codons starting at frame (0, 1 or 2) and
// returns the amino-acid string. Gaps are stripped after normalization and
// ambiguity codes other than N collapse to N before lookup; codons that
// miss the table (any containing N) translate to 'X'. Trailing bases short
// of a full codon are dropped.
func Translate(sequence string, frame int) (string, error) {
	if frame < 0 || frame > 2 {
		return "", fmt.Errorf("%w: %d (want 0, 1 or 2)", ErrInvalidFrame, frame)
	}

	s := seq.Normalize(sequence, seq.Nucleotide)

	var bases strings.Builder
	bases.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == seq.Gap {
			continue
		}
		switch c {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			c = 'N'
		}
		bases.WriteByte(c)
	}
	stripped := bases.String()

	var protein strings.Builder
	if len(stripped) >= frame {
		protein.Grow((len(stripped) - frame) / 3)
	}

	for i := frame; i+3 <= len(stripped); i += 3 {
		codon := stripped[i : i+3]
		aa, ok := codonTable[codon]
		if !ok {
			aa = 'X'
		}
		protein.WriteByte(aa)
	}

	return protein.String(), nil
}

// complementTable covers canonical bases, IUPAC ambiguity codes and gaps.
var complementTable = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N', '-': '-',
}

// Complement returns the complement of a single normalized base.
// Unrecognized characters complement to N.
func Complement(base byte) byte {
	if c, ok := complementTable[base]; ok {
		return c
	}
	return 'N'
}

// ReverseComplement returns the reverse complement of a normalized sequence.
func ReverseComplement(sequence string) string {
	n := len(sequence)
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		result[i] = Complement(sequence[n-1-i])
	}
	return string(result)
}
