package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/seqdiff/seqdiff/internal/compare"
)

// RunRow is one persisted variant comparison.
type RunRow struct {
	RunID           string
	Created         string
	SequenceType    string
	Reference       string
	Variant         string
	VariantLength   int64
	Identity        float64
	DifferenceCount int64
	Mutations       string
}

// runKey deduplicates rows before writing: the primary key is (run_id, variant).
type runKey struct {
	runID, variant string
}

// WriteResult batch-inserts a reference comparison into DuckDB using the
// Appender API. Variants sharing a header within the run are deduplicated
// before writing.
func (s *Store) WriteResult(runID string, result *compare.Result) error {
	if result.NoReference {
		return fmt.Errorf("only reference comparisons are persisted")
	}
	if len(result.Variants) == 0 {
		return nil
	}

	created := time.Now().UTC().Format(time.RFC3339)

	seen := make(map[runKey]bool, len(result.Variants))
	deduped := make([]compare.VariantComparison, 0, len(result.Variants))
	for _, v := range result.Variants {
		k := runKey{runID, v.Header}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, v)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "comparison_runs")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, v := range deduped {
		if err := appender.AppendRow(
			runID, created, string(result.Type), result.Reference.Header,
			v.Header, int64(len(v.Sequence)), v.Identity,
			int64(len(v.Differences)), strings.Join(v.Differences, ","),
		); err != nil {
			return fmt.Errorf("append comparison row: %w", err)
		}
	}

	return appender.Flush()
}

// LookupRun returns every row of a run in variant-header order.
func (s *Store) LookupRun(runID string) ([]RunRow, error) {
	rows, err := s.db.Query(`SELECT
		run_id, created, sequence_type, reference, variant,
		variant_length, identity, difference_count, mutations
		FROM comparison_runs
		WHERE run_id=?
		ORDER BY variant`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(
			&r.RunID, &r.Created, &r.SequenceType, &r.Reference, &r.Variant,
			&r.VariantLength, &r.Identity, &r.DifferenceCount, &r.Mutations,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run rows: %w", err)
	}
	return out, nil
}

// ListRuns returns run IDs with their creation time and variant counts,
// newest first.
func (s *Store) ListRuns() ([]RunSummary, error) {
	rows, err := s.db.Query(`SELECT run_id, MIN(created), COUNT(*)
		FROM comparison_runs
		GROUP BY run_id
		ORDER BY MIN(created) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Created, &r.Variants); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run summaries: %w", err)
	}
	return out, nil
}

// RunSummary describes one stored run.
type RunSummary struct {
	RunID    string
	Created  string
	Variants int64
}

// ClearRuns removes all stored comparison runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM comparison_runs")
	return err
}
