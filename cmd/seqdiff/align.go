package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/internal/compare"
	"github.com/seqdiff/seqdiff/internal/output"
	"github.com/seqdiff/seqdiff/internal/seq"
)

func newAlignCmd() *cobra.Command {
	var (
		outputFile    string
		withConsensus bool
	)

	cmd := &cobra.Command{
		Use:   "align <fasta-file>",
		Short: "Pad sequences to a common length",
		Long:  "Right-pads every sequence with gaps to the length of the longest so the\nset displays column-aligned. No interior gaps are inserted; this is not an\noptimizing aligner.",
		Example: `  seqdiff align sequences.fasta
  seqdiff align --consensus -t nucleotide sequences.fasta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveType()
			if err != nil {
				return err
			}

			entries, err := readEntries(args[0], t)
			if err != nil {
				return err
			}

			comparator := compare.NewComparator(t)
			logger := newLogger()
			defer logger.Sync()
			comparator.SetLogger(logger)

			result, err := comparator.MultiAlign(entries)
			if err != nil {
				return err
			}

			w, done, err := openOutput(outputFile)
			if err != nil {
				return err
			}
			defer done()

			aligned := result.MultiAlignment
			if withConsensus {
				aligned = append(aligned, seq.Entry{
					Header:   "Consensus",
					Sequence: result.Consensus,
				})
			}
			if err := output.WriteFASTA(w, aligned); err != nil {
				return fmt.Errorf("write alignment: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&withConsensus, "consensus", false, "append the per-column consensus as a final entry")

	return cmd
}
