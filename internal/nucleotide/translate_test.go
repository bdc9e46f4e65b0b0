package nucleotide

import (
	"errors"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		frame    int
		want     string
	}{
		{"start-ala-stop", "ATGGCGTAA", 0, "MA*"},
		{"frame one", "AATGGCGTAA", 1, "MA*"},
		{"frame two", "CAATGGCGTAA", 2, "MA*"},
		{"incomplete tail dropped", "ATGGC", 0, "M"},
		{"fewer than three bases", "AT", 0, ""},
		{"empty", "", 0, ""},
		{"gaps stripped before framing", "ATG-GCG-TAA", 0, "MA*"},
		{"N codon gives X", "ATGNNNTAA", 0, "MX*"},
		{"ambiguity collapses to N then X", "ATGGCR", 0, "MX"},
		{"rna input", "AUGGCGUAA", 0, "MA*"},
		{"lowercase", "atggcgtaa", 0, "MA*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.sequence, tt.frame)
			if err != nil {
				t.Fatalf("Translate(%q, %d) unexpected error: %v", tt.sequence, tt.frame, err)
			}
			if got != tt.want {
				t.Errorf("Translate(%q, %d) = %q, want %q", tt.sequence, tt.frame, got, tt.want)
			}
		})
	}
}

func TestTranslate_InvalidFrame(t *testing.T) {
	for _, frame := range []int{-1, 3, 10} {
		_, err := Translate("ATGGCGTAA", frame)
		if !errors.Is(err, ErrInvalidFrame) {
			t.Errorf("Translate frame %d error = %v, want ErrInvalidFrame", frame, err)
		}
	}
}

func TestTranslate_FramesDoNotOverlap(t *testing.T) {
	// ATGATGATG: frame 0 reads MMM, frame 1 reads ** nothing stop-like,
	// just shifted codons; each base is consumed exactly once per frame.
	got0, _ := Translate("ATGATGATG", 0)
	got1, _ := Translate("ATGATGATG", 1)
	if got0 != "MMM" {
		t.Errorf("frame 0 = %q, want MMM", got0)
	}
	if got1 != "**" {
		t.Errorf("frame 1 = %q, want **", got1)
	}
}

func TestComplement(t *testing.T) {
	tests := []struct {
		base byte
		want byte
	}{
		{'A', 'T'}, {'T', 'A'}, {'G', 'C'}, {'C', 'G'},
		{'R', 'Y'}, {'Y', 'R'}, {'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'M', 'K'}, {'B', 'V'}, {'D', 'H'},
		{'N', 'N'}, {'-', '-'},
		{'Q', 'N'}, // unknown falls back to N
	}
	for _, tt := range tests {
		if got := Complement(tt.base); got != tt.want {
			t.Errorf("Complement(%c) = %c, want %c", tt.base, got, tt.want)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"ATGC", "GCAT"},
		{"A", "T"},
		{"ATAT", "ATAT"},
		{"", ""},
		{"ACGTN", "NACGT"},
	}
	for _, tt := range tests {
		if got := ReverseComplement(tt.seq); got != tt.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}
