package contracts

import (
	"context"
	"time"
)

// MutationRecord captures one gateway mutation for the back-office audit
// trail and the outbound audit queue.
type MutationRecord struct {
	Dataset      string    `json:"dataset" bson:"dataset"`
	ResourceType string    `json:"resource_type" bson:"resource_type"`
	ResourceID   string    `json:"resource_id" bson:"resource_id"`
	Action       string    `json:"action" bson:"action"`
	Outcome      string    `json:"outcome" bson:"outcome"`
	RequestID    string    `json:"request_id" bson:"request_id"`
	RecordedAt   time.Time `json:"recorded_at" bson:"recorded_at"`
}

const (
	MutationActionCreate    = "create"
	MutationActionUpdate    = "update"
	MutationActionDelete    = "delete"
	MutationActionDuplicate = "duplicate"

	MutationOutcomeSuccess  = "success"
	MutationOutcomeFailure  = "failure"
	MutationOutcomeRollback = "rollback"
)

type AuditTrailRepository interface {
	RecordMutation(ctx context.Context, record *MutationRecord) error
	FindByDataset(ctx context.Context, dataset string, limit int64) ([]MutationRecord, error)
}

type AuditPublisher interface {
	PublishMutation(ctx context.Context, record *MutationRecord) error
}
