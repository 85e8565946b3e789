package minio

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-crm/internal/mocks"
	"github.com/feral-file/ff-crm/internal/storage"
)

const testBucket = "crm-documents"

func newTestStorage(t *testing.T) (storage.ObjectStorage, *mocks.MockMinioClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockMinioClient(ctrl)
	return NewObjectStorage(Config{Bucket: testBucket, Region: "us-east-1"}, client), client
}

func TestUpload(t *testing.T) {
	s, client := newTestStorage(t)
	body := bytes.NewReader([]byte("%PDF-1.4"))

	client.EXPECT().
		PutObject(gomock.Any(), testBucket, "contacts/c1/a.pdf", body, int64(8), minio.PutObjectOptions{ContentType: "application/pdf"}).
		Return(minio.UploadInfo{Key: "contacts/c1/a.pdf"}, nil)

	err := s.Upload(context.Background(), storage.Object{
		Key:         "contacts/c1/a.pdf",
		Body:        body,
		Size:        8,
		ContentType: "application/pdf",
	})
	require.NoError(t, err)
}

func TestUpload_RequiresKey(t *testing.T) {
	s, _ := newTestStorage(t)
	err := s.Upload(context.Background(), storage.Object{})
	require.Error(t, err)
}

func TestPresignedGetURL(t *testing.T) {
	s, client := newTestStorage(t)
	u, _ := url.Parse("https://s3.example.com/crm-documents/k?X-Amz-Signature=abc")

	client.EXPECT().PresignedGetObject(gomock.Any(), testBucket, "k", time.Hour, gomock.Nil()).Return(u, nil)

	got, err := s.PresignedGetURL(context.Background(), "k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, u.String(), got)
}

func TestPresignedPutURL_Error(t *testing.T) {
	s, client := newTestStorage(t)
	client.EXPECT().PresignedPutObject(gomock.Any(), testBucket, "k", 15*time.Minute).Return(nil, errors.New("boom"))

	_, err := s.PresignedPutURL(context.Background(), "k", 15*time.Minute)
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "deleted"},
		{name: "missing key is ignored", err: minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}},
		{name: "failure", err: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, client := newTestStorage(t)
			client.EXPECT().RemoveObject(gomock.Any(), testBucket, "k", minio.RemoveObjectOptions{}).Return(tt.err)

			err := s.Delete(context.Background(), "k")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExists(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    bool
		wantErr bool
	}{
		{name: "present", want: true},
		{name: "absent", err: minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}},
		{name: "failure", err: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, client := newTestStorage(t)
			client.EXPECT().StatObject(gomock.Any(), testBucket, "k", minio.StatObjectOptions{}).Return(minio.ObjectInfo{}, tt.err)

			got, err := s.Exists(context.Background(), "k")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockMinioClient(ctrl)
	cfg := Config{Bucket: testBucket, Region: "us-east-1"}

	client.EXPECT().BucketExists(gomock.Any(), testBucket).Return(false, nil)
	client.EXPECT().MakeBucket(gomock.Any(), testBucket, minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
	require.NoError(t, EnsureBucket(context.Background(), cfg, client))

	client.EXPECT().BucketExists(gomock.Any(), testBucket).Return(true, nil)
	require.NoError(t, EnsureBucket(context.Background(), cfg, client))
}
