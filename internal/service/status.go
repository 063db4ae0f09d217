package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"filestore/internal/repository"
)

// Status reports whether the backing stores answer.
type Status struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// Stats holds record counts.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// StatusService exposes liveness of the backing stores and record counts.
type StatusService interface {
	Status(ctx context.Context) Status
	Stats(ctx context.Context) (*Stats, error)
}

type statusService struct {
	cache repository.Pinger
	db    repository.Pinger
	users repository.UserRepository
	files repository.FileRepository
	log   *zap.Logger
}

func NewStatusService(
	cache, db repository.Pinger,
	users repository.UserRepository,
	files repository.FileRepository,
	log *zap.Logger,
) StatusService {
	return &statusService{cache: cache, db: db, users: users, files: files, log: log.Named("status")}
}

func (s *statusService) Status(ctx context.Context) Status {
	var st Status
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.cache.Ping(ctx); err != nil {
			s.log.Warn("redis ping failed", zap.Error(err))
			return nil
		}
		st.Redis = true
		return nil
	})
	g.Go(func() error {
		if err := s.db.Ping(ctx); err != nil {
			s.log.Warn("db ping failed", zap.Error(err))
			return nil
		}
		st.DB = true
		return nil
	})
	_ = g.Wait()
	return st
}

func (s *statusService) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.users.Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		st.Users = n
		return nil
	})
	g.Go(func() error {
		n, err := s.files.Count(ctx)
		if err != nil {
			return fmt.Errorf("count files: %w", err)
		}
		st.Files = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}
