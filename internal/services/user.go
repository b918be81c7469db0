package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"donation-system/internal/authz"
	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/repositories"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/types"
	"donation-system/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
	ResetPassword(ctx context.Context, id uint64, payload dto.AdminResetPasswordDTO) error
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return s.userRepo.GetUsers(ctx, filter)
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	role := authz.Role(payload.Role)
	if !role.IsValid() {
		return nil, apperrors.NewBadRequestError("Неизвестная роль")
	}

	if existing, err := s.userRepo.FindUserByEmail(ctx, payload.Email); err == nil && existing != nil {
		return nil, apperrors.NewHttpError(
			http.StatusConflict,
			"Пользователь с таким email уже существует",
			nil,
			nil,
		)
	}

	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка хэширования пароля", err, nil)
	}

	user := &entities.User{
		Fio:      payload.Fio,
		Email:    payload.Email,
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
	}
	if payload.IsActive != nil {
		user.IsActive = *payload.IsActive
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("CreateUser: ошибка создания", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Пользователь создан", zap.Uint64("id", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Fio != nil {
		user.Fio = *payload.Fio
	}
	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.Role != nil {
		role := authz.Role(*payload.Role)
		if !role.IsValid() {
			return nil, apperrors.NewBadRequestError("Неизвестная роль")
		}
		user.Role = role
	}
	if payload.IsActive != nil {
		user.IsActive = *payload.IsActive
	}

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepo.DeleteUser(ctx, id)
}

// ResetPassword — сброс пароля администратором, без текущего пароля.
func (s *UserService) ResetPassword(ctx context.Context, id uint64, payload dto.AdminResetPasswordDTO) error {
	hashedPassword, err := utils.HashPassword(payload.NewPassword)
	if err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка хэширования пароля", err, nil)
	}

	if err := s.userRepo.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return err
	}

	s.logger.Info("Пароль пользователя сброшен администратором", zap.Uint64("userID", id))
	return nil
}
