package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/internal/protein"
	"github.com/seqdiff/seqdiff/internal/seq"
)

func newProteinCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "protein <fasta-file>",
		Short: "Protein property estimates",
		Long:  "Reports molecular weight, GRAVY, isoelectric point, instability, net\ncharge at pH 7 and a secondary-structure estimate per sequence. The pI,\ninstability and structure figures are coarse heuristics.",
		Example: `  seqdiff protein proteins.fasta
  seqdiff protein -o props.tsv proteins.fasta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readEntries(args[0], seq.Protein)
			if err != nil {
				return err
			}

			w, done, err := openOutput(outputFile)
			if err != nil {
				return err
			}
			defer done()

			fmt.Fprintln(w, "#Sequence\tLength\tMW_Da\tGRAVY\tpI\tInstability\tNet_charge\tHelix_pct\tSheet_pct\tCoil_pct")
			for _, e := range entries {
				p := protein.Calculate(e.Sequence)
				ss := protein.PredictSecondaryStructure(e.Sequence)
				fmt.Fprintf(w, "%s\t%d\t%.1f\t%.3f\t%.2f\t%.1f\t%+.1f\t%.1f\t%.1f\t%.1f\n",
					e.Header, p.Length, p.MolecularWeight, p.GRAVY,
					p.IsoelectricPoint, p.InstabilityIndex, p.NetCharge,
					ss.Helix, ss.Sheet, ss.Coil)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")

	return cmd
}
