package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seqdiff/seqdiff/internal/compare"
	"github.com/seqdiff/seqdiff/internal/output"
	"github.com/seqdiff/seqdiff/internal/store"
)

func newCompareCmd() *cobra.Command {
	var (
		outputFile string
		pymolFile  string
		saveRun    string
		dbPath     string
	)

	cmd := &cobra.Command{
		Use:   "compare <fasta-file>",
		Short: "Diff sequences against a reference",
		Long:  "Treats the first FASTA entry as the reference and reports the\nposition-by-position differences and identity of every other entry.",
		Example: `  seqdiff compare variants.fasta
  seqdiff compare -t nucleotide -o report.tsv variants.fasta
  seqdiff compare --pymol mutations.pml variants.fasta
  seqdiff compare --save kras-batch-1 variants.fasta
  cat variants.fasta | seqdiff compare -`,
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

			result, err := comparator.CompareToReference(entries)
			if err != nil {
				return err
			}

			w, done, err := openOutput(outputFile)
			if err != nil {
				return err
			}
			defer done()

			if err := output.NewTabWriter(w).WriteResult(result); err != nil {
				return fmt.Errorf("write comparison: %w", err)
			}

			if pymolFile != "" {
				sites := compare.AggregateMutations(result.Reference.Sequence, result.Variants)
				pw, pdone, err := openOutput(pymolFile)
				if err != nil {
					return err
				}
				defer pdone()
				if err := output.WritePyMOLScript(pw, result.Reference.Header, sites); err != nil {
					return fmt.Errorf("write pymol script: %w", err)
				}
			}

			if saveRun != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()
				if err := s.WriteResult(saveRun, result); err != nil {
					return fmt.Errorf("save run: %w", err)
				}
				logger.Info("run saved",
					zap.String("run", saveRun),
					zap.Int("variants", len(result.Variants)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&pymolFile, "pymol", "", "also write a PyMOL mutation macro to this file")
	cmd.Flags().StringVar(&saveRun, "save", "", "persist the run to the history database under this run ID")
	cmd.Flags().StringVar(&dbPath, "db", "", "history database path (default from config)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if dbPath == "" {
			dbPath = historyPath()
		}
	}

	return cmd
}
