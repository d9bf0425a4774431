package service

import (
	"context"
	"crypto/subtle"

	"classroom-market/config"
	"classroom-market/internal/cache"
	apperrors "classroom-market/pkg/app_errors"
)

type TeacherAuthService interface {
	Login(ctx context.Context, password string, rememberMe bool) (string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) error
}

type TeacherAuthServiceImpl struct {
	sessions cache.SessionStore
	cfg      config.MarketConfig
}

func NewTeacherAuthService(sessions cache.SessionStore, cfg config.MarketConfig) TeacherAuthService {
	return &TeacherAuthServiceImpl{
		sessions: sessions,
		cfg:      cfg,
	}
}

func (s *TeacherAuthServiceImpl) Login(ctx context.Context, password string, rememberMe bool) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.TeacherPassword)) != 1 {
		return "", apperrors.ErrInvalidPassword
	}
	ttl := s.cfg.SessionTTL
	if rememberMe {
		ttl = s.cfg.RememberSessionTTL
	}
	return s.sessions.Create(ctx, ttl)
}

func (s *TeacherAuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *TeacherAuthServiceImpl) Authenticate(ctx context.Context, token string) error {
	return s.sessions.Validate(ctx, token)
}
