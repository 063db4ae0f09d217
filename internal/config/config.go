package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"

	StorageLocal = "local"
	StorageMinIO = "minio"
)

// DatabaseConfig holds metadata store connection settings.
// The same block serves both backends; Driver picks which one is dialed.
type DatabaseConfig struct {
	Driver             string `mapstructure:"driver" validate:"oneof=mongo postgres"`
	Host               string `mapstructure:"host" validate:"required"`
	Port               string `mapstructure:"port"`
	User               string `mapstructure:"user" validate:"required_if=Driver postgres"`
	Password           string `mapstructure:"password"`
	Name               string `mapstructure:"database" validate:"required"`
	SSLMode            string `mapstructure:"sslmode"`
	AuthSource         string `mapstructure:"auth_source"`
	MaxOpenConns       int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeSec int    `mapstructure:"conn_max_lifetime_sec" validate:"gte=0"`
}

// ResolvedPort returns Port, falling back to the driver's well-known port.
func (c DatabaseConfig) ResolvedPort() string {
	if c.Port != "" {
		return c.Port
	}
	if c.Driver == DriverPostgres {
		return "5432"
	}
	return "27017"
}

// RedisConfig holds the session cache connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// SessionConfig controls issued session tokens.
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

// StorageConfig selects the blob backend. FolderPath is the storage root for
// the local driver and the key prefix for the minio driver.
type StorageConfig struct {
	Driver     string `mapstructure:"driver" validate:"oneof=local minio"`
	FolderPath string `mapstructure:"folder_path" validate:"required"`
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// ThumbnailConfig sizes the image rendition worker pool.
type ThumbnailConfig struct {
	Workers   int   `mapstructure:"workers" validate:"gte=0"`
	QueueSize int   `mapstructure:"queue_size" validate:"gte=0"`
	Widths    []int `mapstructure:"widths" validate:"dive,gt=0"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from defaults, an optional config file and environment variables,
// in increasing order of precedence. Sensitive values are not hardcoded.
type AppConfig struct {
	Port      string          `mapstructure:"port" validate:"required"`
	LogLevel  string          `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Session   SessionConfig   `mapstructure:"session"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Storage   StorageConfig   `mapstructure:"storage"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Thumbnail ThumbnailConfig `mapstructure:"thumbnail"`
}

var defaults = map[string]any{
	"port":                     "5000",
	"log_level":                "info",
	"session.ttl":              24 * time.Hour,
	"redis.addr":               "localhost:6379",
	"redis.password":           "",
	"redis.db":                 0,
	"db.driver":                DriverMongo,
	"db.host":                  "localhost",
	"db.port":                  "",
	"db.user":                  "",
	"db.password":              "",
	"db.database":              "files_manager",
	"db.sslmode":               "disable",
	"db.auth_source":           "",
	"db.max_open_conns":        10,
	"db.max_idle_conns":        5,
	"db.conn_max_lifetime_sec": 300,
	"storage.driver":           StorageLocal,
	"storage.folder_path":      "/tmp/files_manager",
	"minio.endpoint":           "",
	"minio.access_key":         "",
	"minio.secret_key":         "",
	"minio.bucket":             "",
	"minio.use_ssl":            false,
	"thumbnail.workers":        2,
	"thumbnail.queue_size":     64,
	"thumbnail.widths":         []int{500, 250, 100},
}

// Load reads configuration. path may be empty, in which case only defaults and
// environment variables are used. Env names are the upper-cased keys with dots
// replaced by underscores (db.host -> DB_HOST); FOLDER_PATH is accepted for the
// storage root.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("storage.folder_path", "FOLDER_PATH", "STORAGE_FOLDER_PATH"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
