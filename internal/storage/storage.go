package storage

import (
	"context"
	"io"
	"strings"
	"time"
)

// Object describes a payload to upload
type Object struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
}

// ObjectStorage stores contact documents in an S3 compatible bucket
//
//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks -mock_names=ObjectStorage=MockObjectStorage
type ObjectStorage interface {
	// Upload writes the object under its key, replacing any previous content
	Upload(ctx context.Context, obj Object) error
	// PresignedGetURL returns a temporary URL to read key
	PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// PresignedPutURL returns a temporary URL to upload directly to key
	PresignedPutURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Exists reports whether key is present
	Exists(ctx context.Context, key string) (bool, error)
}

// BuildKey joins path segments into an object key, dropping empty segments
// and stray slashes
func BuildKey(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, "/")
}
