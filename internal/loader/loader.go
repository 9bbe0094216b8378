// Package loader reads the two delimited-text inputs into row collections.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"sectorenricher/internal/records"
)

// Column aliases accepted in input headers. Upstream exports name the
// ticker column "symbol" and the price column "ytd"; both spellings load.
var (
	tickerColumns    = []string{"ticker", "symbol"}
	nameColumns      = []string{"name", "company"}
	hqColumns        = []string{"headquarters", "hq"}
	ytdChangeColumns = []string{"ytd_change", "ytd"}
)

// LoadCompanies reads the company-list CSV. Required columns: ticker and
// name; headquarters is optional. Ticker symbols are normalized on load.
func LoadCompanies(path string) ([]records.CompanyRecord, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	tickerIdx, ok := findColumn(header, tickerColumns)
	if !ok {
		return nil, missingColumn(path, "ticker")
	}
	nameIdx, ok := findColumn(header, nameColumns)
	if !ok {
		return nil, missingColumn(path, "name")
	}
	hqIdx, hasHQ := findColumn(header, hqColumns)

	companies := make([]records.CompanyRecord, 0, len(rows))
	for _, row := range rows {
		rec := records.CompanyRecord{
			Ticker: records.NormalizeTicker(row[tickerIdx]),
			Name:   strings.TrimSpace(row[nameIdx]),
		}
		if hasHQ {
			rec.Headquarters = strings.TrimSpace(row[hqIdx])
		}
		companies = append(companies, rec)
	}
	return companies, nil
}

// LoadPriceChanges reads the price-change CSV. Required columns: ticker
// and ytd_change. A non-numeric ytd_change value is a fatal input error.
func LoadPriceChanges(path string) ([]records.PriceChangeRecord, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	tickerIdx, ok := findColumn(header, tickerColumns)
	if !ok {
		return nil, missingColumn(path, "ticker")
	}
	ytdIdx, ok := findColumn(header, ytdChangeColumns)
	if !ok {
		return nil, missingColumn(path, "ytd_change")
	}

	changes := make([]records.PriceChangeRecord, 0, len(rows))
	for i, row := range rows {
		raw := strings.TrimSpace(row[ytdIdx])
		ytd, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &MalformedInputError{
				Path: path,
				// +2: header row plus 1-based numbering
				Line:    i + 2,
				Message: "ytd_change " + strconv.Quote(raw) + " is not a number",
				Cause:   err,
			}
		}
		changes = append(changes, records.PriceChangeRecord{
			Ticker:    records.NormalizeTicker(row[tickerIdx]),
			YTDChange: ytd,
		})
	}
	return changes, nil
}

// readCSV reads the whole file, returning data rows and the header row.
// Empty files and files with a header but no rows are not errors.
func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &MalformedInputError{
			Path:    path,
			Message: "cannot open file",
			Cause:   err,
		}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &MalformedInputError{
			Path:    path,
			Message: "file is empty, expected a header row",
		}
	}
	if err != nil {
		return nil, nil, &MalformedInputError{
			Path:    path,
			Message: "cannot read header row",
			Cause:   err,
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &MalformedInputError{
			Path:    path,
			Message: "cannot parse rows",
			Cause:   err,
		}
	}
	return rows, header, nil
}

// findColumn returns the index of the first header cell matching any of
// the accepted names, case-insensitively.
func findColumn(header []string, names []string) (int, bool) {
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		for _, name := range names {
			if strings.EqualFold(cell, name) {
				return i, true
			}
		}
	}
	return 0, false
}

func missingColumn(path, name string) *MalformedInputError {
	return &MalformedInputError{
		Path:    path,
		Message: "required column " + strconv.Quote(name) + " not found in header",
	}
}
