package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/seqdiff/seqdiff/internal/compare"
)

// TabWriter writes reference comparisons in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Variant",
			"Length",
			"Identity_pct",
			"Differences",
			"Mutations",
			"Positions",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single variant comparison.
func (tw *TabWriter) Write(v compare.VariantComparison) error {
	mutations := "-"
	if len(v.Differences) > 0 {
		mutations = strings.Join(v.Differences, ",")
	}

	positions := "-"
	if len(v.Residues) > 0 {
		parts := make([]string, len(v.Residues))
		for i, pos := range v.Residues {
			parts[i] = fmt.Sprintf("%d", pos)
		}
		positions = strings.Join(parts, ",")
	}

	_, err := fmt.Fprintf(tw.w, "%s\t%d\t%.1f\t%d\t%s\t%s\n",
		v.Header, len(v.Sequence), v.Identity, len(v.Differences),
		mutations, positions)
	return err
}

// WriteResult writes the header and every variant in a result.
func (tw *TabWriter) WriteResult(r *compare.Result) error {
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, v := range r.Variants {
		if err := tw.Write(v); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
