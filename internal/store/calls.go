package store

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/sample"
)

// WriteResults batch-inserts a project's classified calls using the
// Appender API. Existing rows for the project are replaced so a re-run
// does not accumulate duplicates.
func (s *Store) WriteResults(project string, items []*sample.Item) error {
	if err := s.ClearProject(project); err != nil {
		return err
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "methylation_calls")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, item := range items {
		for _, r := range item.Results {
			for _, c := range r.Table {
				if err := appender.AppendRow(
					project, r.Sample, r.Reference, r.Methylase.Name, r.Modification,
					int64(c.StartPosition), c.Strand,
					int64(c.ValidCoverage), c.PercentModified,
					int64(c.NMod), int64(c.NCanonical), int64(c.NOtherMod),
					int64(c.NDelete), int64(c.NFail), int64(c.NDiff), int64(c.NNocall),
					c.Status,
				); err != nil {
					return fmt.Errorf("append call: %w", err)
				}
			}
		}
	}

	return appender.Flush()
}

// ClearProject removes every stored call of a project.
func (s *Store) ClearProject(project string) error {
	_, err := s.db.Exec("DELETE FROM methylation_calls WHERE project = ?", project)
	return err
}

// ProjectSummary tallies a project's stored calls per status.
func (s *Store) ProjectSummary(project string) (bedmethyl.Summary, error) {
	rows, err := s.db.Query(
		"SELECT status, COUNT(*) FROM methylation_calls WHERE project = ? GROUP BY status",
		project)
	if err != nil {
		return bedmethyl.Summary{}, fmt.Errorf("query project summary: %w", err)
	}
	defer rows.Close()

	var summary bedmethyl.Summary
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return bedmethyl.Summary{}, fmt.Errorf("scan summary row: %w", err)
		}
		switch status {
		case bedmethyl.StatusMethylated:
			summary.Methylated = count
		case bedmethyl.StatusUnmethylated:
			summary.Unmethylated = count
		default:
			summary.Undetermined += count
		}
	}
	return summary, rows.Err()
}

// CallCount returns the number of stored calls for a project.
func (s *Store) CallCount(project string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM methylation_calls WHERE project = ?", project).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count calls: %w", err)
	}
	return count, nil
}
