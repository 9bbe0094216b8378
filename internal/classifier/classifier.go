package classifier

import (
	"context"

	"sectorenricher/internal/records"
	"sectorenricher/internal/sector"
)

// Classifier is the seam between the pipeline and the completion service.
// Implementations take a merged company row and return exactly one of the
// ten valid sectors, or a typed error. Classify must be safe to retry:
// it performs no remote mutation.
type Classifier interface {
	// Classify assigns a sector to the given company.
	// Returns *UnrecognizedSectorError if the service answered with a
	// label outside the fixed enumeration, or *ClassifyError for
	// transport-level failures.
	Classify(ctx context.Context, company records.MergedRecord) (sector.Sector, error)
}
