// Package repository contains the metadata store abstractions. Backends live in
// subpackages (mongo, postgres) and expose one explicit method per query shape.
package repository

import (
	"context"
	"errors"

	"filestore/internal/model"
)

// ErrNotFound is returned when no record matches. Backends also return it for
// ids that are not syntactically valid, so callers cannot tell the two apart.
var ErrNotFound = errors.New("record not found")

// FilesPageSize is the number of files returned per listing page.
const FilesPageSize = 20

// FileRepository defines data access for file records. No business logic here.
type FileRepository interface {
	// ValidID reports whether id is a syntactically valid identifier for this backend.
	ValidID(id string) bool

	// Insert stores a new record and returns the store-assigned id.
	// The ID field of f is ignored.
	Insert(ctx context.Context, f *model.File) (string, error)

	// FindByID returns the file with the given id.
	FindByID(ctx context.Context, id string) (*model.File, error)

	// FindOwned returns the file with the given id only if it belongs to userID.
	FindOwned(ctx context.Context, id, userID string) (*model.File, error)

	// ListByParent returns one page of the owner's files under a parent.
	ListByParent(ctx context.Context, q ListQuery) ([]model.File, error)

	// SetPublic updates the visibility of a file owned by userID and returns the
	// record as it is after the update.
	SetPublic(ctx context.Context, id, userID string, isPublic bool) (*model.File, error)

	// Count returns the number of stored files.
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines read-only access to user records.
type UserRepository interface {
	// FindByCredentials returns the user matching both email and password hash.
	FindByCredentials(ctx context.Context, email, passwordHash string) (*model.User, error)

	// FindByID returns the user with the given id.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// Count returns the number of stored users.
	Count(ctx context.Context) (int64, error)
}

// Pinger reports metadata store liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ListQuery selects a page of files by owner and parent.
type ListQuery struct {
	UserID string
	Parent model.ParentRef
	Page   int
}

// Skip returns the number of records before the requested page.
func (q ListQuery) Skip() int64 {
	if q.Page < 0 {
		return 0
	}
	return int64(q.Page) * FilesPageSize
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }
