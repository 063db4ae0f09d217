package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filestore/internal/model"
	"filestore/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Connect(ctx context.Context, authorization string) (string, error) {
	args := m.Called(ctx, authorization)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Disconnect(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*model.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Status(ctx context.Context) service.Status {
	return m.Called(ctx).Get(0).(service.Status)
}

func (m *MockStatusService) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}
