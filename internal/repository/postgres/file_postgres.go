package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"filestore/internal/model"
	"filestore/internal/repository"
)

const fileColumns = `id, user_id, name, type, is_public, parent_id, local_path`

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// The root parent is stored as NULL.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

// ValidID reports whether id is a UUID.
func (r *FilePostgres) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Insert inserts a new file row and returns the generated id.
func (r *FilePostgres) Insert(ctx context.Context, f *model.File) (string, error) {
	const q = `
		INSERT INTO files (user_id, name, type, is_public, parent_id, local_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, q,
		f.UserID,
		f.Name,
		string(f.Type),
		f.IsPublic,
		nullParent(f.ParentID),
		nullString(f.LocalPath),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert file: %w", err)
	}
	return id, nil
}

// FindByID fetches a single file by its ID.
func (r *FilePostgres) FindByID(ctx context.Context, id string) (*model.File, error) {
	if !r.ValidID(id) {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	return scanFile(r.db.QueryRowContext(ctx, q, id))
}

// FindOwned fetches a single file by its ID and owner.
func (r *FilePostgres) FindOwned(ctx context.Context, id, userID string) (*model.File, error) {
	if !r.ValidID(id) || !r.ValidID(userID) {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND user_id = $2`
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID))
}

// ListByParent returns files using LIMIT/OFFSET pagination.
func (r *FilePostgres) ListByParent(ctx context.Context, q repository.ListQuery) ([]model.File, error) {
	if !r.ValidID(q.UserID) || (!q.Parent.IsRoot() && !r.ValidID(q.Parent.ID())) {
		return []model.File{}, nil
	}

	var (
		rows *sql.Rows
		err  error
	)
	if q.Parent.IsRoot() {
		const qList = `SELECT ` + fileColumns + ` FROM files
			WHERE user_id = $1 AND parent_id IS NULL
			ORDER BY created_at, id
			LIMIT $2 OFFSET $3`
		rows, err = r.db.QueryContext(ctx, qList, q.UserID, repository.FilesPageSize, q.Skip())
	} else {
		const qList = `SELECT ` + fileColumns + ` FROM files
			WHERE user_id = $1 AND parent_id = $2
			ORDER BY created_at, id
			LIMIT $3 OFFSET $4`
		rows, err = r.db.QueryContext(ctx, qList, q.UserID, q.Parent.ID(), repository.FilesPageSize, q.Skip())
	}
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	items := make([]model.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetPublic updates is_public on a row owned by userID and returns the updated row.
func (r *FilePostgres) SetPublic(ctx context.Context, id, userID string, isPublic bool) (*model.File, error) {
	if !r.ValidID(id) || !r.ValidID(userID) {
		return nil, repository.ErrNotFound
	}
	const q = `
		UPDATE files SET is_public = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + fileColumns
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID, isPublic))
}

// Count returns the number of file rows.
func (r *FilePostgres) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (*model.File, error) {
	var (
		f         model.File
		typ       string
		parentID  sql.NullString
		localPath sql.NullString
	)
	if err := row.Scan(&f.ID, &f.UserID, &f.Name, &typ, &f.IsPublic, &parentID, &localPath); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan file: %w", err)
	}
	f.Type = model.FileType(typ)
	if parentID.Valid {
		f.ParentID = model.ParentID(parentID.String)
	}
	f.LocalPath = localPath.String
	return &f, nil
}

func nullParent(p model.ParentRef) sql.NullString {
	if p.IsRoot() {
		return sql.NullString{}
	}
	return sql.NullString{String: p.ID(), Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
