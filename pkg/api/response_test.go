// Файл: pkg/api/response_test.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "donation-system/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessOne(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessOne(c, http.StatusCreated, "Создано", map[string]string{"name": "test"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Создано", body["message"])
	assert.NotNil(t, body["data"])
	assert.Nil(t, body["meta"], "meta присутствует только у списков")
}

func TestSuccessList_Pagination(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessList(c, "Список", []string{"a", "b"}, 25, 2, 10)
	require.NoError(t, err)

	body := decodeEnvelope(t, rec)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(10), meta["limit"])
	assert.Equal(t, float64(25), meta["total"])
	assert.Equal(t, float64(3), meta["totalPages"], "25 записей по 10 — это 3 страницы")
}

func TestSuccessList_NilListBecomesEmptyArray(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessList[string](c, "Пусто", nil, 0, 1, 10)
	require.NoError(t, err)

	// Клиент должен получить [], а не null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestErrorResponse_HttpError(t *testing.T) {
	c, rec := newTestContext()

	httpErr := apperrors.NewHttpError(http.StatusConflict, "Уже существует", nil, nil)
	require.NoError(t, ErrorResponse(c, httpErr, zap.NewNop()))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Уже существует", body["message"])
	assert.NotContains(t, body, "data", "у ошибки без Details поле data не сериализуется")
}

func TestErrorResponse_ValidationDetailsKeepData(t *testing.T) {
	c, rec := newTestContext()

	httpErr := apperrors.NewValidationError("Ошибка валидации", map[string]string{"email": "required"})
	require.NoError(t, ErrorResponse(c, httpErr, zap.NewNop()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, body, "data", "детали валидации уходят клиенту в data")
}

func TestErrorResponse_TokenErrorsCollapse(t *testing.T) {
	// Любая причина отказа токена наружу выглядит одинаково.
	for _, err := range []error{
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenMalformed,
		apperrors.ErrTokenSignature,
		apperrors.ErrTokenIsNotAccess,
	} {
		c, rec := newTestContext()
		require.NoError(t, ErrorResponse(c, err, zap.NewNop()))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, apperrors.ErrUnauthorized.Error(), body["message"],
			"причина %v не должна доходить до клиента", err)
		assert.NotContains(t, body, "data")
	}
}

func TestErrorResponse_SentinelStatuses(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrForbidden, http.StatusForbidden},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrBadRequest, http.StatusBadRequest},
		{apperrors.ErrAccountLocked, http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		c, rec := newTestContext()
		require.NoError(t, ErrorResponse(c, tc.err, zap.NewNop()))
		assert.Equal(t, tc.code, rec.Code, "статус для %v", tc.err)
	}
}

func TestErrorResponse_UnknownErrorHidesDetails(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, ErrorResponse(c, fmt.Errorf("pq: duplicate key value"), zap.NewNop()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, apperrors.ErrInternalServer.Error(), body["message"],
		"внутренние детали не должны утекать клиенту")
}
