package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/internal/blast"
)

func newBlastCmd() *cobra.Command {
	var (
		index       int
		payloadOnly bool
	)

	cmd := &cobra.Command{
		Use:   "blast <fasta-file>",
		Short: "Build an NCBI BLAST submission for one sequence",
		Long:  "Builds the BLAST request for one entry: protein sequences go to blastp\nagainst nr, nucleotide sequences to blastn against nt. Prints the web\nsubmission URL, or just the FASTA payload with --payload-only.",
		Example: `  seqdiff blast proteins.fasta
  seqdiff blast --index 2 -t nucleotide genes.fasta
  seqdiff blast --payload-only proteins.fasta`,
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
			if index < 1 || index > len(entries) {
				return fmt.Errorf("sequence index %d out of range (file has %d entries)", index, len(entries))
			}

			req := blast.NewRequest(t, entries[index-1])
			if err := req.Validate(); err != nil {
				return err
			}

			if payloadOnly {
				fmt.Print(req.Payload)
				return nil
			}

			fmt.Printf("Program:  %s\n", req.Program)
			fmt.Printf("Database: %s\n", req.Database)
			fmt.Printf("URL:      %s\n", req.SubmitURL())
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 1, "1-based entry index to submit")
	cmd.Flags().BoolVar(&payloadOnly, "payload-only", false, "print only the FASTA payload")

	return cmd
}
