// Package writer serializes the pipeline outputs. Both files are written
// to a temp file in the destination directory and renamed into place, so
// a failed run never leaves a partially written output behind.
package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"sectorenricher/internal/records"
)

var enrichedHeader = []string{"ticker", "name", "ytd_change", "sector"}

// WriteEnriched writes the enriched table as CSV, preserving row order.
func WriteEnriched(path string, rows []records.EnrichedRecord) error {
	return writeAtomic(path, func(f *os.File) error {
		w := csv.NewWriter(f)

		if err := w.Write(enrichedHeader); err != nil {
			return err
		}
		for _, row := range rows {
			record := []string{
				row.Ticker,
				row.Name,
				strconv.FormatFloat(row.YTDChange, 'f', -1, 64),
				row.Sector.String(),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}

		w.Flush()
		return w.Error()
	})
}

// WriteSummary writes the sector ranking as plain text, one line per
// sector in the order given (best average first). Unclassified rows are
// reported on a trailing line instead of appearing in the ranking.
func WriteSummary(path string, summaries []records.SectorSummary, unclassified int) error {
	return writeAtomic(path, func(f *os.File) error {
		if len(summaries) == 0 {
			if _, err := fmt.Fprintln(f, "No sectors classified."); err != nil {
				return err
			}
		}

		for i, s := range summaries {
			_, err := fmt.Fprintf(f, "%d. %s: average YTD change %+.2f%% (%d companies, top: %s)\n",
				i+1, s.Sector, s.AverageYTDChange, s.CompanyCount, s.TopCompany)
			if err != nil {
				return err
			}
		}

		if unclassified > 0 {
			if _, err := fmt.Fprintf(f, "Unclassified: %d companies\n", unclassified); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAtomic runs write against a temp file next to path, then renames
// it into place. The temp file is removed on any failure.
func writeAtomic(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output file in %s: %w", dir, err)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}
