// Package output provides result formatters for comparison runs.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// fastaLineWidth wraps sequence lines in files meant for humans.
const fastaLineWidth = 60

// FormatEntry renders one entry as a single-sequence FASTA payload,
// ">header\nsequence\n", the exact shape download and BLAST collaborators
// consume.
func FormatEntry(e seq.Entry) string {
	return fmt.Sprintf(">%s\n%s\n", e.Header, e.Sequence)
}

// WriteFASTA writes entries with sequence lines wrapped at 60 columns.
func WriteFASTA(w io.Writer, entries []seq.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, ">%s\n", e.Header); err != nil {
			return err
		}
		s := e.Sequence
		for len(s) > 0 {
			n := fastaLineWidth
			if len(s) < n {
				n = len(s)
			}
			if _, err := fmt.Fprintf(bw, "%s\n", s[:n]); err != nil {
				return err
			}
			s = s[n:]
		}
	}
	return bw.Flush()
}

// SuggestFilename derives a filesystem-safe download name from a header.
func SuggestFilename(header string) string {
	var b strings.Builder
	for _, r := range header {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "sequence"
	}
	return name + ".fasta"
}
