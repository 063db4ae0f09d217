package service_test

import (
	. "filestore/internal/service"

	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filestore/internal/model"
	"filestore/internal/repository"
	"filestore/internal/storage"
)

// memFiles is an in-memory FileRepository. Ids look like "f1", "f2", ...
type memFiles struct {
	mu    sync.Mutex
	seq   int
	files map[string]model.File
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string]model.File{}}
}

func (m *memFiles) ValidID(id string) bool {
	var n int
	_, err := fmt.Sscanf(id, "f%d", &n)
	return err == nil
}

func (m *memFiles) Insert(_ context.Context, f *model.File) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	rec := *f
	rec.ID = fmt.Sprintf("f%d", m.seq)
	m.files[rec.ID] = rec
	return rec.ID, nil
}

func (m *memFiles) FindByID(_ context.Context, id string) (*model.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (m *memFiles) FindOwned(ctx context.Context, id, userID string) (*model.File, error) {
	f, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return f, nil
}

func (m *memFiles) ListByParent(_ context.Context, q repository.ListQuery) ([]model.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.File{}
	for _, f := range m.files {
		if f.UserID == q.UserID && f.ParentID == q.Parent {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFiles) SetPublic(_ context.Context, id, userID string, isPublic bool) (*model.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok || f.UserID != userID {
		return nil, repository.ErrNotFound
	}
	f.IsPublic = isPublic
	m.files[id] = f
	return &f, nil
}

func (m *memFiles) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.files)), nil
}

type memUsers map[string]model.User

func (m memUsers) FindByCredentials(_ context.Context, email, hash string) (*model.User, error) {
	for _, u := range m {
		if u.Email == email && u.Password == hash {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m memUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m memUsers) Count(context.Context) (int64, error) { return int64(len(m)), nil }

func TestFileService_PublishScenario(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	files := newMemFiles()
	users := memUsers{ownerID: {ID: ownerID, Email: "bob@dylan.com"}}
	svc := NewFileService(files, users, storage.NewLocal(fsys), testRoot, nil, zap.NewNop())

	folder, err := svc.Create(ctx, ownerID, model.FileInput{Name: "root", Type: model.FileTypeFolder})
	require.NoError(t, err)
	assert.True(t, folder.ParentID.IsRoot())
	assert.False(t, folder.IsPublic)

	file, err := svc.Create(ctx, ownerID, model.FileInput{
		Name:     "a.txt",
		Type:     model.FileTypeFile,
		Data:     "aGVsbG8=",
		ParentID: model.ParentID(folder.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, folder.ID, file.ParentID.ID())

	_, err = svc.Data(ctx, file.ID, "", "")
	assert.ErrorIs(t, err, ErrNotFound)

	published, err := svc.SetVisibility(ctx, file.ID, ownerID, true)
	require.NoError(t, err)
	assert.True(t, published.IsPublic)

	again, err := svc.SetVisibility(ctx, file.ID, ownerID, true)
	require.NoError(t, err)
	assert.Equal(t, published, again)

	data, err := svc.Data(ctx, file.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data.Content))

	_, err = svc.Create(ctx, ownerID, model.FileInput{
		Name:     "b.txt",
		Type:     model.FileTypeFile,
		Data:     "aGVsbG8=",
		ParentID: model.ParentID(file.ID),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Parent is not a folder", verr.Message)

	listed, err := svc.List(ctx, ownerID, model.ParentID(folder.ID), 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, file.ID, listed[0].ID)
}
