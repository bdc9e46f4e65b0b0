package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/internal/store"
)

func newHistoryCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List or inspect saved comparison runs",
		Long:  "Without arguments, lists every saved run. With a run ID, prints that\nrun's per-variant rows.",
		Example: `  seqdiff history
  seqdiff history kras-batch-1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = historyPath()
			}
			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 0 {
				runs, err := s.ListRuns()
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Println("No saved runs. Save one with: seqdiff compare --save <run-id> <file>")
					return nil
				}
				fmt.Println("#Run\tCreated\tVariants")
				for _, r := range runs {
					fmt.Printf("%s\t%s\t%d\n", r.RunID, r.Created, r.Variants)
				}
				return nil
			}

			rows, err := s.LookupRun(args[0])
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("run %q not found", args[0])
			}
			fmt.Println("#Variant\tReference\tType\tLength\tIdentity_pct\tDifferences\tMutations")
			for _, r := range rows {
				mutations := r.Mutations
				if mutations == "" {
					mutations = "-"
				}
				fmt.Printf("%s\t%s\t%s\t%d\t%.1f\t%d\t%s\n",
					r.Variant, r.Reference, r.SequenceType, r.VariantLength,
					r.Identity, r.DifferenceCount, mutations)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "history database path (default from config)")

	return cmd
}
