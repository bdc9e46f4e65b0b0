// Package seq provides FASTA parsing, normalization and validation for
// protein and nucleotide sequences.
package seq

import "fmt"

// Gap is the padding and alignment gap character.
const Gap byte = '-'

// MaxSequenceLength is the per-sequence validation ceiling.
const MaxSequenceLength = 10000

// Type selects which alphabet, validator and analytics path is active.
type Type string

const (
	Protein    Type = "protein"
	Nucleotide Type = "nucleotide"
)

// ParseType converts a user-supplied mode string to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "protein", "aa":
		return Protein, nil
	case "nucleotide", "dna", "nt":
		return Nucleotide, nil
	}
	return "", fmt.Errorf("unknown sequence type %q (want protein or nucleotide)", s)
}

// proteinAlphabet is the 20 standard residues plus B/X/Z, stop and gap.
var proteinAlphabet = alphabetSet("ACDEFGHIKLMNPQRSTVWYBXZ*-")

// nucleotideAlphabet is ACGT plus the IUPAC ambiguity codes and gap.
var nucleotideAlphabet = alphabetSet("ACGTRYSWKMBDHVN-")

func alphabetSet(chars string) map[byte]bool {
	set := make(map[byte]bool, len(chars))
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return set
}

// Alphabet returns the permitted character set for a sequence type.
func (t Type) Alphabet() map[byte]bool {
	if t == Nucleotide {
		return nucleotideAlphabet
	}
	return proteinAlphabet
}

// Entry is a single parsed FASTA record. Entries are value objects:
// once parsed they are never mutated.
type Entry struct {
	Header   string
	Sequence string
}
