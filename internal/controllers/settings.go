package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/services"
	"donation-system/pkg/api"
	apperrors "donation-system/pkg/errors"
)

type SettingController struct {
	settingService services.SettingServiceInterface
	logger         *zap.Logger
}

func NewSettingController(settingService services.SettingServiceInterface, logger *zap.Logger) *SettingController {
	return &SettingController{settingService: settingService, logger: logger}
}

func (ctrl *SettingController) GetSettings(c echo.Context) error {
	settings, err := ctrl.settingService.GetSettings(c.Request().Context())
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Настройки сайта получены", settings)
}

func (ctrl *SettingController) UpdateSettings(c echo.Context) error {
	var payload dto.UpdateSiteSettingDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	settings, err := ctrl.settingService.UpdateSettings(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Настройки сайта обновлены", settings)
}
