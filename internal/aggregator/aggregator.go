// Package aggregator computes per-sector statistics from the enriched rows.
package aggregator

import (
	"sort"

	"sectorenricher/internal/records"
	"sectorenricher/internal/sector"
)

// Summarize groups enriched rows by sector and computes company count,
// mean YTD change, and the top performer per sector, ranked by descending
// average. Unclassified rows are excluded from the ranking; callers report
// them separately via CountUnclassified. Sectors with no members are
// omitted. Pure function: same input always yields the same output.
func Summarize(rows []records.EnrichedRecord) []records.SectorSummary {
	type bucket struct {
		count int
		sum   float64
		top   records.EnrichedRecord
	}

	buckets := make(map[sector.Sector]*bucket)
	for _, row := range rows {
		if row.Sector == sector.Unclassified {
			continue
		}

		b, ok := buckets[row.Sector]
		if !ok {
			buckets[row.Sector] = &bucket{count: 1, sum: row.YTDChange, top: row}
			continue
		}
		b.count++
		b.sum += row.YTDChange
		if row.YTDChange > b.top.YTDChange {
			b.top = row
		}
	}

	summaries := make([]records.SectorSummary, 0, len(buckets))
	for s, b := range buckets {
		summaries = append(summaries, records.SectorSummary{
			Sector:           s,
			CompanyCount:     b.count,
			AverageYTDChange: b.sum / float64(b.count),
			TopCompany:       b.top.Ticker,
		})
	}

	// Rank by average, best first; tie-break on sector name so map
	// iteration order never leaks into the output.
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].AverageYTDChange != summaries[j].AverageYTDChange {
			return summaries[i].AverageYTDChange > summaries[j].AverageYTDChange
		}
		return summaries[i].Sector < summaries[j].Sector
	})

	return summaries
}

// CountUnclassified returns how many rows carry the Unclassified sentinel.
func CountUnclassified(rows []records.EnrichedRecord) int {
	count := 0
	for _, row := range rows {
		if row.Sector == sector.Unclassified {
			count++
		}
	}
	return count
}
