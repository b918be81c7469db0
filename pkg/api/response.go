package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "donation-system/pkg/errors"
)

// Response — единый конверт ответа API. omitzero (а не omitempty)
// прячет data у ошибок, но сохраняет "data": [] для пустых списков.
type Response[T any] struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    T               `json:"data,omitzero"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
}

type PaginationMeta struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      uint64 `json:"total"`
	TotalPages int    `json:"totalPages"`
}

// SuccessOne — для возврата одного объекта.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList — для списков с пагинацией.
func SuccessList[T any](c echo.Context, message string, list []T, total uint64, page, limit int) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}

	if list == nil {
		list = make([]T, 0)
	}

	return c.JSON(http.StatusOK, Response[[]T]{
		Success: true,
		Message: message,
		Data:    list,
		Meta: &PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// ErrorResponse превращает ошибку в конверт с корректным статусом.
// Клиенту уходит только Message; причина и контекст остаются в логах.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, Response[interface{}]{
			Success: false,
			Message: httpErr.Message,
			Data:    httpErr.Details,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, Response[any]{
			Success: false,
			Message: "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	code := apperrors.StatusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		logger.Error("Unexpected Error", zap.Error(err))
		message = apperrors.ErrInternalServer.Error()
	} else if apperrors.IsAuthTokenError(err) {
		// Анти-перечисление: конкретная причина отказа токена наружу не уходит.
		message = apperrors.ErrUnauthorized.Error()
	}

	return c.JSON(code, Response[any]{
		Success: false,
		Message: message,
	})
}
