package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filestore/internal/config"
)

func TestNewRedis(t *testing.T) {
	srv := miniredis.RunT(t)

	rdb, err := NewRedis(context.Background(), config.RedisConfig{Addr: srv.Addr()})
	require.NoError(t, err)
	defer rdb.Close()

	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	srv.CheckGet(t, "k", "v")
}

func TestNewRedis_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	rdb, err := NewRedis(context.Background(), config.RedisConfig{Addr: addr})
	assert.Nil(t, rdb)
	assert.ErrorContains(t, err, "redis ping")
}
