package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"filestore/internal/config"
)

// MinIO implements Storage on an S3-compatible bucket. The blob path, minus any
// leading slash, is the object key. It is safe for concurrent use.
type MinIO struct {
	client *minio.Client
	bucket string
}

var _ Storage = (*MinIO)(nil)

// NewMinIO creates a MinIO-backed storage and makes sure the bucket exists.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (*MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &MinIO{client: cli, bucket: cfg.Bucket}, nil
}

func objectKey(p string) string {
	return strings.TrimLeft(p, "/")
}

func (m *MinIO) Put(ctx context.Context, p string, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: mimetype.Detect(data).String()}
	_, err := m.client.PutObject(ctx, m.bucket, objectKey(p), bytes.NewReader(data), int64(len(data)), opts)
	return err
}

func (m *MinIO) Get(ctx context.Context, p string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, objectKey(p), minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinIOErr(p, err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapMinIOErr(p, err)
	}
	return b, nil
}

func mapMinIOErr(p string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s: %w", p, ErrNotExist)
	}
	return err
}
