package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"filestore/internal/auth"
	"filestore/internal/config"
	"filestore/internal/database"
	"filestore/internal/database/migration"
	"filestore/internal/http/handler"
	"filestore/internal/http/middleware"
	"filestore/internal/logger"
	tracing "filestore/internal/otel"
	"filestore/internal/repository"
	mongorepo "filestore/internal/repository/mongo"
	"filestore/internal/repository/postgres"
	"filestore/internal/service"
	"filestore/internal/session"
	"filestore/internal/storage"
	"filestore/internal/thumbnail"
)

const shutdownTimeout = 10 * time.Second

// metadata bundles the repositories of the selected metadata backend.
type metadata struct {
	files repository.FileRepository
	users repository.UserRepository
	db    repository.Pinger
	close func(context.Context) error
}

func openMetadata(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*metadata, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, log); err != nil {
			db.Close()
			return nil, err
		}
		return &metadata{
			files: postgres.NewFilePostgres(db),
			users: postgres.NewUserPostgres(db),
			db:    repository.PingFunc(db.PingContext),
			close: func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverMongo:
		m, err := database.NewMongo(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &metadata{
			files: mongorepo.NewFileMongo(m.DB),
			users: mongorepo.NewUserMongo(m.DB),
			db:    m,
			close: m.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Database.Driver)
	}
}

func openStorage(ctx context.Context, cfg *config.AppConfig, fsys afero.Fs) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageLocal:
		return storage.NewLocal(fsys), nil
	case config.StorageMinIO:
		return storage.NewMinIO(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func runServe(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	shutdownTracing, err := tracing.Init(ctx, log)
	if err != nil {
		return err
	}

	meta, err := openMetadata(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open metadata store", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return err
	}
	defer meta.close(context.Background()) //nolint:errcheck

	rdb, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		return err
	}
	defer rdb.Close()

	store, err := openStorage(ctx, cfg, afero.NewOsFs())
	if err != nil {
		log.Error("failed to initialize blob storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}

	pool := thumbnail.NewPool(store, cfg.Thumbnail.Widths, cfg.Thumbnail.QueueSize, log)
	// Workers outlive the signal context so Close can drain queued jobs.
	pool.Start(context.WithoutCancel(ctx), cfg.Thumbnail.Workers)
	defer pool.Close()

	sessions := session.NewStore(rdb)

	reg := newRegistry()
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	app := handler.NewApp(handler.Deps{
		Files:    service.NewFileService(meta.files, meta.users, store, cfg.Storage.FolderPath, pool, log),
		Auth:     service.NewAuthService(meta.users, sessions, cfg.Session.TTL, log),
		Status:   service.NewStatusService(sessions, meta.db, meta.users, meta.files, log),
		Resolver: auth.NewResolver(sessions),
		Metrics:  metrics,
		Gatherer: reg,
		Log:      log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("port", cfg.Port),
			zap.String("db_driver", cfg.Database.Driver),
			zap.String("storage_driver", cfg.Storage.Driver),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
	}
	return errors.Join(errs...)
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Database.Driver != config.DriverPostgres {
		log.Info("nothing to migrate", zap.String("driver", cfg.Database.Driver))
		return nil
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return migration.EnsureMigrated(ctx, db, log)
}
