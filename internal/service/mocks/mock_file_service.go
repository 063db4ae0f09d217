package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filestore/internal/model"
	"filestore/internal/service"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Create(ctx context.Context, userID string, in model.FileInput) (*model.FileResponse, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileResponse), args.Error(1)
}

func (m *MockFileService) Get(ctx context.Context, id, requesterID string) (*model.FileResponse, error) {
	args := m.Called(ctx, id, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileResponse), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, userID string, parent model.ParentRef, page int) ([]model.FileResponse, error) {
	args := m.Called(ctx, userID, parent, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileResponse), args.Error(1)
}

func (m *MockFileService) SetVisibility(ctx context.Context, id, requesterID string, public bool) (*model.FileResponse, error) {
	args := m.Called(ctx, id, requesterID, public)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileResponse), args.Error(1)
}

func (m *MockFileService) Data(ctx context.Context, id, requesterID, size string) (*service.FileData, error) {
	args := m.Called(ctx, id, requesterID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileData), args.Error(1)
}

type MockThumbnailer struct {
	mock.Mock
}

func (m *MockThumbnailer) Enqueue(fileID, localPath string) bool {
	return m.Called(fileID, localPath).Bool(0)
}
