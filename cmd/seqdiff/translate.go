package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/internal/nucleotide"
	"github.com/seqdiff/seqdiff/internal/output"
	"github.com/seqdiff/seqdiff/internal/seq"
)

func newTranslateCmd() *cobra.Command {
	var (
		outputFile string
		frame      int
		revComp    bool
	)

	cmd := &cobra.Command{
		Use:   "translate <fasta-file>",
		Short: "Translate nucleotide sequences to protein",
		Long:  "Translates each entry with the standard genetic code at the selected\nreading frame (0, 1 or 2). Gaps are stripped and ambiguity codes other\nthan N collapse to N; unresolvable codons emit X.",
		Example: `  seqdiff translate genes.fasta
  seqdiff translate --frame 2 genes.fasta
  seqdiff translate --reverse-complement genes.fasta`,
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

			translated := make([]seq.Entry, 0, len(entries))
			for _, e := range entries {
				s := e.Sequence
				if revComp {
					s = nucleotide.ReverseComplement(s)
				}
				aa, err := nucleotide.Translate(s, frame)
				if err != nil {
					return fmt.Errorf("translate %s: %w", e.Header, err)
				}
				translated = append(translated, seq.Entry{
					Header:   fmt.Sprintf("%s frame=%d", e.Header, frame),
					Sequence: aa,
				})
			}

			if err := output.WriteFASTA(w, translated); err != nil {
				return fmt.Errorf("write translation: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "reading frame: 0, 1 or 2")
	cmd.Flags().BoolVar(&revComp, "reverse-complement", false, "translate the reverse complement")

	return cmd
}
