package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/seqdiff/seqdiff/internal/compare"
)

// WritePyMOLScript renders aggregated mutation sites as a PyMOL selection
// macro. Each site gets a comment with its residue change and frequency,
// followed by a combined selection and coloring of all mutated positions.
func WritePyMOLScript(w io.Writer, objectName string, sites []compare.MutationSite) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Mutation map for %s\n", objectName)
	fmt.Fprintf(bw, "# %d mutated positions\n", len(sites))

	if len(sites) == 0 {
		fmt.Fprintln(bw, "# no mutations to highlight")
		return bw.Flush()
	}

	residues := make([]string, len(sites))
	for i, s := range sites {
		variants := make([]string, len(s.VariantResidues))
		for j, c := range s.VariantResidues {
			variants[j] = string(c)
		}
		fmt.Fprintf(bw, "# %c%d -> {%s}  n=%d freq=%.2f\n",
			s.ReferenceResidue, s.Position, strings.Join(variants, ","),
			s.Occurrences, s.Frequency)
		residues[i] = fmt.Sprintf("%d", s.Position)
	}

	fmt.Fprintf(bw, "select mutations, %s and resi %s\n",
		objectName, strings.Join(residues, "+"))
	fmt.Fprintln(bw, "show sticks, mutations")
	fmt.Fprintln(bw, "color red, mutations")

	return bw.Flush()
}
