package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the object storage connection settings
type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicURL  string
	PresignTTL time.Duration
}

// ImageStore stores uploaded images in an S3-compatible bucket and issues
// presigned upload URLs.
type ImageStore struct {
	client     *minio.Client
	bucket     string
	publicURL  string
	presignTTL time.Duration
}

// NewImageStore creates an image store connected to the configured bucket
func NewImageStore(cfg Config) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}

	return &ImageStore{
		client:     client,
		bucket:     cfg.Bucket,
		publicURL:  cfg.PublicURL,
		presignTTL: cfg.PresignTTL,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Save writes the image under objectName and returns its public URL
func (s *ImageStore) Save(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return s.publicURL + "/" + objectName, nil
}

// PresignPut issues a time-limited URL the client can PUT the image to
func (s *ImageStore) PresignPut(ctx context.Context, objectName string) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return u.String(), nil
}
