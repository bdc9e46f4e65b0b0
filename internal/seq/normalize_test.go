package seq

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		seqType Type
		want    string
	}{
		{"uppercase passthrough", "ACGT", Nucleotide, "ACGT"},
		{"lowercase", "acgt", Nucleotide, "ACGT"},
		{"mixed case", "AcGt", Nucleotide, "ACGT"},
		{"internal whitespace", "AC GT\nAC\tGT", Nucleotide, "ACGTACGT"},
		{"rna to dna", "AUGGCU", Nucleotide, "ATGGCT"},
		{"lowercase rna", "auggcu", Nucleotide, "ATGGCT"},
		{"protein keeps U untouched... as U", "MKVU", Protein, "MKVU"},
		{"protein lowercase", "mkv", Protein, "MKV"},
		{"empty", "", Protein, ""},
		{"whitespace only", " \n\t ", Nucleotide, ""},
		{"gap preserved", "AC-GT", Nucleotide, "AC-GT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, tt.seqType)
			if got != tt.want {
				t.Errorf("Normalize(%q, %s) = %q, want %q", tt.input, tt.seqType, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"ac gu\nT", "MkV -LI", "", "AUGC"}
	for _, in := range inputs {
		for _, st := range []Type{Protein, Nucleotide} {
			once := Normalize(in, st)
			twice := Normalize(once, st)
			if once != twice {
				t.Errorf("Normalize not idempotent for %q (%s): %q != %q", in, st, once, twice)
			}
		}
	}
}
