package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "files_manager", cfg.Database.Name)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/files_manager", cfg.Storage.FolderPath)
	assert.Equal(t, []int{500, 250, 100}, cfg.Thumbnail.Widths)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("FOLDER_PATH", "/var/blobs")
	t.Setenv("SESSION_TTL", "1h30m")
	t.Setenv("THUMBNAIL_WIDTHS", "320,64")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "/var/blobs", cfg.Storage.FolderPath)
	assert.Equal(t, 90*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []int{320, 64}, cfg.Thumbnail.Widths)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filestore.yaml")
	content := []byte("port: \"9000\"\ndb:\n  driver: postgres\n  user: files\nstorage:\n  driver: minio\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "files", cfg.Database.User)
	assert.Equal(t, StorageMinIO, cfg.Storage.Driver)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "cassandra")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("postgres without user", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_ResolvedPort(t *testing.T) {
	assert.Equal(t, "27017", DatabaseConfig{Driver: DriverMongo}.ResolvedPort())
	assert.Equal(t, "5432", DatabaseConfig{Driver: DriverPostgres}.ResolvedPort())
	assert.Equal(t, "6000", DatabaseConfig{Driver: DriverPostgres, Port: "6000"}.ResolvedPort())
}
