package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/dto"
	"github.com/Trunday/kalfa-api/internal/entities"
	"github.com/Trunday/kalfa-api/internal/repositories"
	"github.com/Trunday/kalfa-api/pkg/config"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error)
	GetProfile(ctx context.Context, userID uint64) (*entities.User, error)
	ForgotPassword(ctx context.Context, payload dto.ForgotPasswordDTO) error
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error) {
	email := ""
	if payload.Email != nil {
		email = *payload.Email
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, payload.Username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Kullanıcı adı veya e-posta zaten kayıtlı.", nil)
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	role := payload.Role
	if role == "" {
		role = entities.RoleUser
	}

	user := &entities.User{
		Username: payload.Username,
		Password: hashed,
		Email:    null.StringFromPtr(payload.Email),
		Role:     role,
		FullName: null.StringFromPtr(payload.FullName),
		Active:   true,
	}

	// The unique indexes stay authoritative; a concurrent register past the
	// pre-check still maps to the same 400.
	return s.userRepo.CreateUser(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	attemptsKey := fmt.Sprintf("login_attempts:%s", payload.Username)

	attemptsStr, _ := s.cacheRepo.Get(ctx, attemptsKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		s.logger.Warn("login temporarily locked", zap.String("login", payload.Username))
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Çok fazla başarısız deneme. %.0f dakika sonra tekrar deneyin.", s.cfg.LockoutDuration.Minutes()),
			nil,
		)
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, payload.Username)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	// Deactivated accounts are reported exactly like missing ones.
	if !user.Active {
		return nil, apperrors.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		if _, err := s.cacheRepo.Incr(ctx, attemptsKey); err != nil {
			s.logger.Warn("failed to record login attempt", zap.Error(err))
		} else if err := s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration); err != nil {
			s.logger.Warn("failed to set lockout TTL", zap.Error(err))
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Del(ctx, attemptsKey); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}
	return user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint64) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ForgotPassword stores a reset token in the cache and logs it server-side.
// The answer is always silent success so account existence cannot be probed.
// Token delivery (mail/SMS) is not implemented.
func (s *AuthService) ForgotPassword(ctx context.Context, payload dto.ForgotPasswordDTO) error {
	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, payload.Email)
	if err != nil || !user.Active {
		s.logger.Warn("password reset requested for unknown or inactive account")
		return nil
	}

	resetToken := uuid.New().String()
	cacheKey := fmt.Sprintf("password_reset:%s", resetToken)
	if err := s.cacheRepo.Set(ctx, cacheKey, user.ID, s.cfg.ResetTokenTTL); err != nil {
		s.logger.Error("failed to store password reset token", zap.Error(err))
		return err
	}

	s.logger.Warn("password reset token issued",
		zap.Uint64("userID", user.ID),
		zap.String("reset_token", resetToken),
	)
	return nil
}
