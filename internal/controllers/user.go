package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/services"
	"donation-system/pkg/api"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

func (ctrl *UserController) GetUsers(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	users, total, err := ctrl.userService.GetUsers(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessList(c, "Список пользователей получен", users, total, filter.Page, filter.Limit)
}

func (ctrl *UserController) FindUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	user, err := ctrl.userService.FindUser(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Пользователь найден", user)
}

func (ctrl *UserController) CreateUser(c echo.Context) error {
	var payload dto.CreateUserDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.userService.CreateUser(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusCreated, "Пользователь создан", user)
}

func (ctrl *UserController) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	var payload dto.UpdateUserDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.userService.UpdateUser(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Пользователь обновлен", user)
}

func (ctrl *UserController) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	if err := ctrl.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne[any](c, http.StatusOK, "Пользователь удален", nil)
}

func (ctrl *UserController) ResetPassword(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	var payload dto.AdminResetPasswordDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.userService.ResetPassword(c.Request().Context(), id, payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne[any](c, http.StatusOK, "Пароль пользователя сброшен", nil)
}
