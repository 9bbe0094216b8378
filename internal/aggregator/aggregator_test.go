package aggregator

import (
	"math"
	"reflect"
	"testing"

	"sectorenricher/internal/records"
	"sectorenricher/internal/sector"
)

func TestSummarize_GroupsAndRanks(t *testing.T) {
	rows := []records.EnrichedRecord{
		{Ticker: "AAPL", Name: "Apple", YTDChange: 10.0, Sector: sector.Technology},
		{Ticker: "MSFT", Name: "Microsoft", YTDChange: 20.0, Sector: sector.Technology},
		{Ticker: "XOM", Name: "Exxon", YTDChange: 40.0, Sector: sector.Energy},
		{Ticker: "CVX", Name: "Chevron", YTDChange: 30.0, Sector: sector.Energy},
		{Ticker: "PLD", Name: "Prologis", YTDChange: -5.0, Sector: sector.RealEstate},
	}

	summaries := Summarize(rows)

	want := []records.SectorSummary{
		{Sector: sector.Energy, CompanyCount: 2, AverageYTDChange: 35.0, TopCompany: "XOM"},
		{Sector: sector.Technology, CompanyCount: 2, AverageYTDChange: 15.0, TopCompany: "MSFT"},
		{Sector: sector.RealEstate, CompanyCount: 1, AverageYTDChange: -5.0, TopCompany: "PLD"},
	}

	if !reflect.DeepEqual(summaries, want) {
		t.Errorf("Summarize() = %+v, want %+v", summaries, want)
	}
}

func TestSummarize_ExcludesUnclassified(t *testing.T) {
	rows := []records.EnrichedRecord{
		{Ticker: "AAPL", YTDChange: 12.5, Sector: sector.Technology},
		{Ticker: "COIN", YTDChange: 99.0, Sector: sector.Unclassified},
	}

	summaries := Summarize(rows)

	if len(summaries) != 1 {
		t.Fatalf("Summarize() returned %d sectors, want 1", len(summaries))
	}
	if summaries[0].Sector != sector.Technology {
		t.Errorf("summaries[0].Sector = %q, want Technology", summaries[0].Sector)
	}

	if got := CountUnclassified(rows); got != 1 {
		t.Errorf("CountUnclassified() = %d, want 1", got)
	}
}

func TestSummarize_SingleRow(t *testing.T) {
	rows := []records.EnrichedRecord{
		{Ticker: "AAPL", Name: "Apple", YTDChange: 12.5, Sector: sector.Technology},
	}

	summaries := Summarize(rows)

	if len(summaries) != 1 {
		t.Fatalf("Summarize() returned %d sectors, want 1", len(summaries))
	}
	s := summaries[0]
	if s.CompanyCount != 1 || s.AverageYTDChange != 12.5 || s.TopCompany != "AAPL" {
		t.Errorf("Summarize() = %+v, want count 1, average 12.5, top AAPL", s)
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Errorf("Summarize(nil) returned %d sectors, want 0", len(got))
	}
}

func TestSummarize_NegativeAverages(t *testing.T) {
	rows := []records.EnrichedRecord{
		{Ticker: "A", YTDChange: -10.0, Sector: sector.Utilities},
		{Ticker: "B", YTDChange: -20.0, Sector: sector.Utilities},
	}

	summaries := Summarize(rows)

	if len(summaries) != 1 {
		t.Fatalf("Summarize() returned %d sectors, want 1", len(summaries))
	}
	if math.Abs(summaries[0].AverageYTDChange+15.0) > 1e-9 {
		t.Errorf("AverageYTDChange = %v, want -15.0", summaries[0].AverageYTDChange)
	}
	// Top performer is the least negative.
	if summaries[0].TopCompany != "A" {
		t.Errorf("TopCompany = %q, want A", summaries[0].TopCompany)
	}
}

func TestSummarize_TieBrokenBySectorName(t *testing.T) {
	rows := []records.EnrichedRecord{
		{Ticker: "XOM", YTDChange: 10.0, Sector: sector.Energy},
		{Ticker: "AAPL", YTDChange: 10.0, Sector: sector.Technology},
	}

	first := Summarize(rows)
	for i := 0; i < 10; i++ {
		if got := Summarize(rows); !reflect.DeepEqual(got, first) {
			t.Fatalf("Summarize() order unstable across runs: %+v vs %+v", got, first)
		}
	}

	if first[0].Sector != sector.Energy {
		t.Errorf("tied sectors not ordered by name: got %q first", first[0].Sector)
	}
}
