package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"filestore/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"missing endpoint", config.MinIOConfig{}, "endpoint"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000"}, "credentials"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(context.Background(), tt.cfg)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "tmp/files_manager/abc", objectKey("/tmp/files_manager/abc"))
	assert.Equal(t, "files/abc_100", objectKey("files/abc_100"))
}

func TestMapMinIOErr(t *testing.T) {
	notFound := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
	assert.ErrorIs(t, mapMinIOErr("/x", notFound), ErrNotExist)

	other := errors.New("connection refused")
	assert.Equal(t, other, mapMinIOErr("/x", other))
}
