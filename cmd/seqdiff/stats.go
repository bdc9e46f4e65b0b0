package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/internal/nucleotide"
	"github.com/seqdiff/seqdiff/internal/seq"
)

func newStatsCmd() *cobra.Command {
	var (
		outputFile  string
		vsReference bool
	)

	cmd := &cobra.Command{
		Use:   "stats <fasta-file>",
		Short: "Nucleotide composition and substitution statistics",
		Long:  "Reports base composition, GC content and GC skew per sequence. With\n--vs-reference the first entry becomes the reference and each other entry\nis classified into transitions, transversions, gaps and ambiguous sites.",
		Example: `  seqdiff stats genes.fasta
  seqdiff stats --vs-reference genes.fasta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readEntries(args[0], seq.Nucleotide)
			if err != nil {
				return err
			}

			w, done, err := openOutput(outputFile)
			if err != nil {
				return err
			}
			defer done()

			if vsReference {
				if len(entries) < 2 {
					return &seq.ValidationError{
						Name:    "input",
						Message: "substitution statistics need a reference and at least one variant",
						Err:     seq.ErrInsufficientSequences,
					}
				}
				fmt.Fprintln(w, "#Variant\tTransitions\tTransversions\tTs/Tv\tGaps\tAmbiguous\tIdentity_pct\tGC_delta")
				for _, s := range nucleotide.SummarizeAlignment(entries[0], entries[1:]) {
					ratio := "undefined"
					if s.RatioValid {
						ratio = fmt.Sprintf("%.2f", s.Ratio)
					}
					fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%d\t%.1f\t%+.1f\n",
						s.Header, s.Transitions, s.Transversions, ratio,
						s.Gaps, s.Ambiguous, s.Identity, s.GCDelta)
				}
				return nil
			}

			fmt.Fprintln(w, "#Sequence\tLength\tA\tC\tG\tT\tN\tOther\tGC_pct\tAT_pct\tGC_skew")
			for _, e := range entries {
				s := nucleotide.CalculateStats(e.Sequence, e.Header)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\t%.1f\t%.3f\n",
					s.Header, s.Length, s.A, s.C, s.G, s.T, s.N, s.Others,
					s.GCContent, s.ATContent, s.GCSkew)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&vsReference, "vs-reference", false, "classify substitutions against the first entry")

	return cmd
}
