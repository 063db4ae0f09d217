// Package storage holds blob storage backends. Blobs are addressed by a path
// string; the same path is recorded as a file's localPath in the metadata store.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get when nothing is stored at the path.
var ErrNotExist = errors.New("blob does not exist")

// Storage writes and reads whole blobs.
type Storage interface {
	// Put writes data at path, creating parent directories or buckets as needed,
	// and replaces anything already there.
	Put(ctx context.Context, path string, data []byte) error
	// Get reads the blob stored at path.
	Get(ctx context.Context, path string) ([]byte, error)
}
