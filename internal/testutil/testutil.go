package testutil

import (
	"context"

	"sectorenricher/internal/classifier"
	"sectorenricher/internal/records"
	"sectorenricher/internal/sector"
)

// MockClassifier is a mock implementation of the Classifier interface for testing
type MockClassifier struct {
	ClassifyFunc func(ctx context.Context, company records.MergedRecord) (sector.Sector, error)
}

// Classify implements the Classifier interface
func (m *MockClassifier) Classify(ctx context.Context, company records.MergedRecord) (sector.Sector, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, company)
	}
	return sector.Technology, nil
}

// NewMockClassifier creates a simple mock classifier with predefined values
func NewMockClassifier(s sector.Sector, err error) classifier.Classifier {
	return &MockClassifier{
		ClassifyFunc: func(ctx context.Context, company records.MergedRecord) (sector.Sector, error) {
			return s, err
		},
	}
}

// NewTickerClassifier creates a mock that looks each ticker up in the
// given table and reports an unrecognized label for anything missing.
func NewTickerClassifier(sectors map[string]sector.Sector) classifier.Classifier {
	return &MockClassifier{
		ClassifyFunc: func(ctx context.Context, company records.MergedRecord) (sector.Sector, error) {
			if s, ok := sectors[company.Ticker]; ok {
				return s, nil
			}
			return "", &classifier.UnrecognizedSectorError{Ticker: company.Ticker, Label: "Unknown"}
		},
	}
}
