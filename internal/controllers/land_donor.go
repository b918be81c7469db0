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

type LandDonorController struct {
	landDonorService services.LandDonorServiceInterface
	logger           *zap.Logger
}

func NewLandDonorController(landDonorService services.LandDonorServiceInterface, logger *zap.Logger) *LandDonorController {
	return &LandDonorController{landDonorService: landDonorService, logger: logger}
}

func (ctrl *LandDonorController) GetLandDonors(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	donors, total, err := ctrl.landDonorService.GetLandDonors(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessList(c, "Список дарителей земли получен", donors, total, filter.Page, filter.Limit)
}

func (ctrl *LandDonorController) FindLandDonor(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	donor, err := ctrl.landDonorService.FindLandDonor(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Даритель земли найден", donor)
}

func (ctrl *LandDonorController) CreateLandDonor(c echo.Context) error {
	var payload dto.CreateLandDonorDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	donor, err := ctrl.landDonorService.CreateLandDonor(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusCreated, "Даритель земли создан", donor)
}

func (ctrl *LandDonorController) UpdateLandDonor(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	var payload dto.UpdateLandDonorDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	donor, err := ctrl.landDonorService.UpdateLandDonor(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Даритель земли обновлен", donor)
}

func (ctrl *LandDonorController) DeleteLandDonor(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	if err := ctrl.landDonorService.DeleteLandDonor(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne[any](c, http.StatusOK, "Даритель земли удален", nil)
}
