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

type ContributionController struct {
	contributionService services.ContributionServiceInterface
	logger              *zap.Logger
}

func NewContributionController(contributionService services.ContributionServiceInterface, logger *zap.Logger) *ContributionController {
	return &ContributionController{contributionService: contributionService, logger: logger}
}

func (ctrl *ContributionController) GetContributions(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	contributions, total, err := ctrl.contributionService.GetContributions(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessList(c, "Список пожертвований получен", contributions, total, filter.Page, filter.Limit)
}

func (ctrl *ContributionController) FindContribution(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	contribution, err := ctrl.contributionService.FindContribution(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Пожертвование найдено", contribution)
}

func (ctrl *ContributionController) CreateContribution(c echo.Context) error {
	var payload dto.CreateContributionDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	contribution, err := ctrl.contributionService.CreateContribution(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusCreated, "Пожертвование зарегистрировано", contribution)
}

func (ctrl *ContributionController) UpdateContribution(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	var payload dto.UpdateContributionDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	contribution, err := ctrl.contributionService.UpdateContribution(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Пожертвование обновлено", contribution)
}

func (ctrl *ContributionController) DeleteContribution(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	if err := ctrl.contributionService.DeleteContribution(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne[any](c, http.StatusOK, "Пожертвование удалено", nil)
}
