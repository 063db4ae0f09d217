package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filestore/internal/model"
	"filestore/internal/repository"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) ValidID(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockFileRepository) Insert(ctx context.Context, f *model.File) (string, error) {
	args := m.Called(ctx, f)
	return args.String(0), args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id string) (*model.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) FindOwned(ctx context.Context, id, userID string) (*model.File, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) ListByParent(ctx context.Context, q repository.ListQuery) ([]model.File, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileRepository) SetPublic(ctx context.Context, id, userID string, isPublic bool) (*model.File, error) {
	args := m.Called(ctx, id, userID, isPublic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
