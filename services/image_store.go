package services

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// MinioImageStore keeps menu item pictures in a MinIO bucket.
type MinioImageStore struct {
	Client  *minio.Client
	Bucket  string
	BaseURL string
}

var _ ImageStore = (*MinioImageStore)(nil)

func NewMinioImageStore(client *minio.Client, bucket, baseURL string) *MinioImageStore {
	return &MinioImageStore{Client: client, Bucket: bucket, BaseURL: baseURL}
}

func (s *MinioImageStore) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.Client.PutObject(ctx, s.Bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.URL(name), nil
}

func (s *MinioImageStore) URL(name string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + s.Bucket + "/" + name
}
