package storage

import (
	"context"
	"time"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

// minioStorage presigns direct object URLs for document attachments. The
// gateway hands the URL to the console and the browser talks to the bucket
// itself.
type minioStorage struct {
	client     *minio.Client
	bucketName string
}

func NewMinioStorage(client *minio.Client, bucketName string) contracts.ObjectStorage {
	return &minioStorage{client: client, bucketName: bucketName}
}

func (s *minioStorage) PresignedDownloadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrPresignAttachmentURL(err, objectName)
	}
	return presigned.String(), nil
}

func (s *minioStorage) PresignedUploadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presigned, err := s.client.PresignedPutObject(ctx, s.bucketName, objectName, expiry)
	if err != nil {
		return "", exceptions.ErrPresignAttachmentURL(err, objectName)
	}
	return presigned.String(), nil
}
