// Package main provides the seqdiff command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagVerbose bool
	flagType    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "seqdiff",
		Short:   "Compare and analyze FASTA sequences",
		Long:    "seqdiff diffs protein or nucleotide FASTA sequences against a reference,\npads sequence sets into column alignments, and derives composition and\nphysicochemical statistics.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
	}

	cobra.OnInitialize(initConfig)

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&flagType, "type", "t", "", "sequence type: protein or nucleotide (default from config, else protein)")

	root.AddCommand(newCompareCmd())
	root.AddCommand(newAlignCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newProteinCmd())
	root.AddCommand(newTranslateCmd())
	root.AddCommand(newBlastCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.seqdiff.yaml if present. A missing config file is fine.
func initConfig() {
	viper.SetConfigName(".seqdiff")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetDefault("sequence_type", string(seq.Protein))
	_ = viper.ReadInConfig()
}

// newLogger returns a development logger when --verbose is set, otherwise a
// no-op logger so library debug output stays quiet.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// resolveType picks the sequence type from the --type flag, falling back to
// the configured default.
func resolveType() (seq.Type, error) {
	s := flagType
	if s == "" {
		s = viper.GetString("sequence_type")
	}
	return seq.ParseType(s)
}

// historyPath returns the configured run-history database location.
func historyPath() string {
	if p := viper.GetString("history.path"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seqdiff-history.duckdb"
	}
	return filepath.Join(home, ".seqdiff", "history.duckdb")
}

// readEntries parses and validates a FASTA file ("-" reads stdin).
func readEntries(path string, t seq.Type) ([]seq.Entry, error) {
	parser, err := seq.NewParser(path, t)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	entries, err := parser.ReadAll()
	if err != nil {
		return nil, err
	}
	if err := seq.ValidateAll(entries, t); err != nil {
		return nil, err
	}
	return entries, nil
}

// openOutput opens the -o target, defaulting to stdout.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
