package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"
)

// Local stores blobs on a filesystem. Production wires afero.NewOsFs; tests use
// afero.NewMemMapFs.
type Local struct {
	fs afero.Fs
}

// NewLocal creates a Local storage on top of fsys.
func NewLocal(fsys afero.Fs) *Local {
	return &Local{fs: fsys}
}

var _ Storage = (*Local)(nil)

func (l *Local) Put(ctx context.Context, p string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(l.fs, p, data, 0o644)
}

func (l *Local) Get(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := afero.ReadFile(l.fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", p, ErrNotExist)
		}
		return nil, err
	}
	return b, nil
}
