package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"filestore/internal/auth"
	"filestore/internal/model"
	"filestore/internal/repository"
)

// AuthService defines session handshake use cases.
type AuthService interface {
	// Connect checks a Basic credential and issues a session token.
	Connect(ctx context.Context, authorization string) (string, error)

	// Disconnect revokes a live session token.
	Disconnect(ctx context.Context, token string) error

	// Me returns the user behind an authenticated request.
	Me(ctx context.Context, userID string) (*model.UserResponse, error)
}

type authService struct {
	users    repository.UserRepository
	sessions auth.Sessions
	ttl      time.Duration
	log      *zap.Logger
}

func NewAuthService(users repository.UserRepository, sessions auth.Sessions, ttl time.Duration, log *zap.Logger) AuthService {
	return &authService{users: users, sessions: sessions, ttl: ttl, log: log.Named("auth")}
}

func (s *authService) Connect(ctx context.Context, authorization string) (string, error) {
	email, password, ok := auth.ParseBasic(authorization)
	if !ok {
		return "", ErrUnauthorized
	}

	user, err := s.users.FindByCredentials(ctx, email, auth.HashPassword(password))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug("connect rejected", zap.String("email", email))
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	token, err := s.sessions.Issue(ctx, user.ID, s.ttl)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *authService) Disconnect(ctx context.Context, token string) error {
	_, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return s.sessions.Revoke(ctx, token)
}

func (s *authService) Me(ctx context.Context, userID string) (*model.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &model.UserResponse{ID: user.ID, Email: user.Email}, nil
}
