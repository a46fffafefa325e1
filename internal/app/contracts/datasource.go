package contracts

import (
	"context"
	"net/url"

	"caregate-service/internal/pkg/fhir_dto"
)

// DataSource is the narrow store contract every dataset reads and writes
// through. The live FHIR client and the in-memory fixture source both
// satisfy it; downstream code must not care which one it got.
type DataSource interface {
	Search(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error)
	Create(ctx context.Context, resourceType string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error)
	Update(ctx context.Context, resourceType, id string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error)
	Delete(ctx context.Context, resourceType, id string) error
}

// SourceResolver decides, per logical dataset, whether reads and writes go
// to the live store or an injected fixture source. A pure routing decision.
type SourceResolver interface {
	Resolve(datasetKey string) (string, error)
	Source(datasetKey string) (DataSource, error)
}
