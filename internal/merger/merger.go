// Package merger joins the company list with the price-change list.
package merger

import (
	"sectorenricher/internal/records"
)

// Merge performs an inner join of companies and price changes on
// normalized ticker. Output order follows the company list; tickers
// missing from either input are dropped. Duplicate tickers within an
// input keep their first occurrence only, so every merged ticker appears
// exactly once. Deterministic: same inputs always produce the same
// output.
func Merge(companies []records.CompanyRecord, changes []records.PriceChangeRecord) []records.MergedRecord {
	ytdByTicker := make(map[string]float64, len(changes))
	for _, c := range changes {
		if _, ok := ytdByTicker[c.Ticker]; ok {
			continue
		}
		ytdByTicker[c.Ticker] = c.YTDChange
	}

	merged := make([]records.MergedRecord, 0, len(companies))
	seen := make(map[string]bool, len(companies))
	for _, company := range companies {
		if seen[company.Ticker] {
			continue
		}
		seen[company.Ticker] = true

		ytd, ok := ytdByTicker[company.Ticker]
		if !ok {
			continue
		}
		merged = append(merged, records.MergedRecord{
			Ticker:       company.Ticker,
			Name:         company.Name,
			Headquarters: company.Headquarters,
			YTDChange:    ytd,
		})
	}
	return merged
}
