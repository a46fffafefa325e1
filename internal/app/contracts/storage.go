package contracts

import (
	"context"
	"time"
)

// ObjectStorage presigns direct-access URLs for document attachments; the
// gateway never proxies attachment bytes itself.
type ObjectStorage interface {
	PresignedDownloadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	PresignedUploadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
