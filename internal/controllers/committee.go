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

type CommitteeController struct {
	committeeService services.CommitteeServiceInterface
	logger           *zap.Logger
}

func NewCommitteeController(committeeService services.CommitteeServiceInterface, logger *zap.Logger) *CommitteeController {
	return &CommitteeController{committeeService: committeeService, logger: logger}
}

func (ctrl *CommitteeController) GetCommittees(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	committees, total, err := ctrl.committeeService.GetCommittees(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessList(c, "Список членов комитета получен", committees, total, filter.Page, filter.Limit)
}

func (ctrl *CommitteeController) FindCommittee(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	committee, err := ctrl.committeeService.FindCommittee(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Член комитета найден", committee)
}

func (ctrl *CommitteeController) CreateCommittee(c echo.Context) error {
	var payload dto.CreateCommitteeDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	committee, err := ctrl.committeeService.CreateCommittee(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusCreated, "Член комитета создан", committee)
}

func (ctrl *CommitteeController) UpdateCommittee(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	var payload dto.UpdateCommitteeDTO
	if err := c.Bind(&payload); err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	committee, err := ctrl.committeeService.UpdateCommittee(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne(c, http.StatusOK, "Член комитета обновлен", committee)
}

func (ctrl *CommitteeController) DeleteCommittee(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	if err := ctrl.committeeService.DeleteCommittee(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	return api.SuccessOne[any](c, http.StatusOK, "Член комитета удален", nil)
}
