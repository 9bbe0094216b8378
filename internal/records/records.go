// Package records holds the row types that flow through the pipeline:
// the two raw inputs, the merged row, the classified row, and the
// per-sector aggregate.
package records

import (
	"strings"

	"sectorenricher/internal/sector"
)

// CompanyRecord is one row of the company-list input.
type CompanyRecord struct {
	Ticker       string
	Name         string
	Headquarters string
}

// PriceChangeRecord is one row of the price-change input.
type PriceChangeRecord struct {
	Ticker    string
	YTDChange float64
}

// MergedRecord is the inner join of a company row with its price change.
type MergedRecord struct {
	Ticker       string
	Name         string
	Headquarters string
	YTDChange    float64
}

// EnrichedRecord is a merged row with its assigned sector.
type EnrichedRecord struct {
	Ticker    string
	Name      string
	YTDChange float64
	Sector    sector.Sector
}

// SectorSummary aggregates the enriched rows belonging to one sector.
type SectorSummary struct {
	Sector           sector.Sector
	CompanyCount     int
	AverageYTDChange float64
	TopCompany       string
}

// NormalizeTicker canonicalizes a ticker symbol for join matching:
// surrounding whitespace is stripped and the symbol is upper-cased.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
