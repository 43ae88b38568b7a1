package auth

import (
	"context"
	"errors"

	autherrors "go-timeclock/internal/auth/errors"
	"go-timeclock/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login validates the PIN against an active ADMIN user and issues a
	// session token.
	Login(ctx context.Context, pinCode string) (LoginResponse, error)
}

type service struct {
	users   user.Repository
	session Session
	logger  *zap.Logger
}

func NewService(users user.Repository, session Session, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, session: session, logger: l}
}

func (s *service) Login(ctx context.Context, pinCode string) (LoginResponse, error) {
	u, err := s.users.FindAdminByPIN(ctx, pinCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("admin login rejected")
			return LoginResponse{}, autherrors.ErrInvalidAdminPIN
		}
		return LoginResponse{}, err
	}

	token, err := s.session.Issue(u.ID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("admin login", zap.String("user_id", u.ID.String()))
	return LoginResponse{
		UserID: u.ID.String(),
		Name:   u.Name,
		Token:  token,
	}, nil
}
