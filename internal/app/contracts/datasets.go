package contracts

import (
	"context"

	"caregate-service/internal/pkg/dto/requests"
	"caregate-service/internal/pkg/dto/responses"
)

// DatasetUsecase is the gateway surface the page layer talks to. View
// models cross this boundary as interface{} because each dataset has its
// own concrete type; the mapper registry owns the concrete shapes.
type DatasetUsecase interface {
	List(ctx context.Context, datasetKey string, intent requests.ListIntent) ([]interface{}, bool, error)
	Create(ctx context.Context, datasetKey string, payload []byte) (interface{}, error)
	Update(ctx context.Context, datasetKey, resourceID string, payload []byte) (interface{}, error)
	Delete(ctx context.Context, datasetKey, resourceID string) error
	Duplicate(ctx context.Context, datasetKey, resourceID string) (interface{}, error)
	BulkDelete(ctx context.Context, datasetKey string, resourceIDs []string) (*responses.BulkReport, error)
	BulkSetStatus(ctx context.Context, datasetKey string, resourceIDs []string, status string) (*responses.BulkReport, error)
	AuditTrail(ctx context.Context, datasetKey string, limit int64) ([]MutationRecord, error)
	AttachmentDownloadURL(ctx context.Context, resourceID string) (*responses.AttachmentURL, error)
	AttachmentUploadURL(ctx context.Context, resourceID string) (*responses.AttachmentURL, error)
}
