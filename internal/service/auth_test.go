package service_test

import (
	. "filestore/internal/service"

	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filestore/internal/model"
	"filestore/internal/repository"
	repoMocks "filestore/internal/repository/mocks"
	"filestore/internal/session"
)

const (
	bobBasic = "Basic Ym9iQGR5bGFuLmNvbTp0b3RvMTIzNCE="
	bobHash  = "89cad29e3ebc1035b29b1478a8e70854f25fa2b2"
)

func newAuthService(t *testing.T, users repository.UserRepository) (AuthService, *session.Store, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })
	store := session.NewStore(rdb)
	return NewAuthService(users, store, 24*time.Hour, zap.NewNop()), store, srv
}

func TestAuthService_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByCredentials", ctx, "bob@dylan.com", bobHash).
			Return(&model.User{ID: ownerID, Email: "bob@dylan.com"}, nil)
		svc, store, srv := newAuthService(t, mUsers)

		token, err := svc.Connect(ctx, bobBasic)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, ok, err := store.Resolve(ctx, token)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, ownerID, userID)
		assert.Equal(t, 24*time.Hour, srv.TTL("auth_"+token))
	})

	t.Run("wrong password issues nothing", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByCredentials", ctx, "bob@dylan.com", "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3").
			Return(nil, repository.ErrNotFound)
		svc, _, srv := newAuthService(t, mUsers)

		token, err := svc.Connect(ctx, "Basic Ym9iQGR5bGFuLmNvbTp0ZXN0")

		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, token)
		assert.Empty(t, srv.Keys())
	})

	t.Run("malformed header", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc, _, srv := newAuthService(t, mUsers)

		_, err := svc.Connect(ctx, "Basic not-base64!")

		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, srv.Keys())
		mUsers.AssertNotCalled(t, "FindByCredentials")
	})

	t.Run("store failure", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByCredentials", ctx, "bob@dylan.com", bobHash).Return(nil, errors.New("timeout"))
		svc, _, _ := newAuthService(t, mUsers)

		_, err := svc.Connect(ctx, bobBasic)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAuthService_Disconnect(t *testing.T) {
	ctx := context.Background()
	svc, store, srv := newAuthService(t, new(repoMocks.MockUserRepository))

	token, err := store.Issue(ctx, ownerID, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.Disconnect(ctx, token))
	assert.False(t, srv.Exists("auth_"+token))

	assert.ErrorIs(t, svc.Disconnect(ctx, token), ErrUnauthorized)
	assert.ErrorIs(t, svc.Disconnect(ctx, ""), ErrUnauthorized)
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	mUsers := new(repoMocks.MockUserRepository)
	mUsers.On("FindByID", ctx, ownerID).Return(&model.User{ID: ownerID, Email: "bob@dylan.com", Password: bobHash}, nil)
	mUsers.On("FindByID", ctx, strangerID).Return(nil, repository.ErrNotFound)
	svc, _, _ := newAuthService(t, mUsers)

	me, err := svc.Me(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, &model.UserResponse{ID: ownerID, Email: "bob@dylan.com"}, me)

	_, err = svc.Me(ctx, strangerID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
