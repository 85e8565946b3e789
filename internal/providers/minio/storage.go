package minio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/storage"
)

// Config holds the bucket settings
type Config struct {
	Bucket string
	Region string
}

type objectStorage struct {
	client adapter.MinioClient
	bucket string
}

// NewObjectStorage creates an ObjectStorage backed by an S3 compatible bucket
func NewObjectStorage(cfg Config, client adapter.MinioClient) storage.ObjectStorage {
	return &objectStorage{
		client: client,
		bucket: cfg.Bucket,
	}
}

// EnsureBucket creates the bucket when it does not exist yet
func EnsureBucket(ctx context.Context, cfg Config, client adapter.MinioClient) error {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
	}
	logger.InfoCtx(ctx, "Created storage bucket", zap.String("bucket", cfg.Bucket))

	return nil
}

func (s *objectStorage) Upload(ctx context.Context, obj storage.Object) error {
	if obj.Key == "" {
		return errors.New("object key is required")
	}

	_, err := s.client.PutObject(ctx, s.bucket, obj.Key, obj.Body, obj.Size, minio.PutObjectOptions{
		ContentType: obj.ContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", obj.Key, err)
	}

	return nil
}

func (s *objectStorage) PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign get for %s: %w", key, err)
	}
	return u.String(), nil
}

func (s *objectStorage) PresignedPutURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to presign put for %s: %w", key, err)
	}
	return u.String(), nil
}

func (s *objectStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *objectStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat object %s: %w", key, err)
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
