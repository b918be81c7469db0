// Файл: internal/services/auth.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/repositories"
	"donation-system/pkg/config"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
	ChangePassword(ctx context.Context, userID uint64, payload dto.ChangePasswordDTO) error
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

// Login проверяет учётные данные. Неизвестный email и неверный пароль
// дают один и тот же ответ — по ошибке нельзя перечислять аккаунты.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkLockout(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("Login: попытка входа в отключённую учётную запись", zap.Uint64("userID", user.ID))
		return nil, apperrors.ErrAccountInactive
	}

	s.resetLoginAttempts(ctx, user.ID)

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Вход не ломаем из-за неудачной отметки времени.
		s.logger.Warn("Login: не удалось обновить last_login_at", zap.Uint64("userID", user.ID), zap.Error(err))
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("GetUserByID: не удалось найти пользователя", zap.Uint64("userID", userID), zap.Error(err))
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// ChangePassword — самообслуживание: требуется текущий пароль.
// Выданные ранее токены остаются действительными до истечения срока.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint64, payload dto.ChangePasswordDTO) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.Password, payload.CurrentPassword); err != nil {
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			"Текущий пароль указан неверно",
			nil,
			nil,
		)
	}

	hashedPassword, err := utils.HashPassword(payload.NewPassword)
	if err != nil {
		return apperrors.NewHttpError(
			http.StatusInternalServerError,
			"Ошибка хэширования нового пароля",
			err,
			nil,
		)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return apperrors.NewHttpError(
			http.StatusInternalServerError,
			"Ошибка обновления пароля пользователя",
			err,
			map[string]interface{}{"userID": userID},
		)
	}

	s.logger.Info("Пароль пользователя успешно изменён", zap.Uint64("userID", userID))
	return nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID uint64) error {
	lockoutKey := fmt.Sprintf("lockout:%d", userID)

	// Если ключ существует — аккаунт заблокирован.
	if _, err := s.cacheRepo.Get(ctx, lockoutKey); err == nil {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", userID)
	attempts, _ := s.cacheRepo.Incr(ctx, attemptsKey)
	s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf("lockout:%d", userID)
		s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration)
		s.cacheRepo.Del(ctx, attemptsKey)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", userID)
	lockoutKey := fmt.Sprintf("lockout:%d", userID)
	s.cacheRepo.Del(ctx, attemptsKey, lockoutKey)
}
