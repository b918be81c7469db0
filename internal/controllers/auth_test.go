// Файл: internal/controllers/auth_test.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"donation-system/internal/authz"
	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/pkg/customvalidator"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/middleware"
	"donation-system/pkg/service"
	"donation-system/pkg/utils"
)

// fakeAuthService подменяет сервис авторизации: контроллерные тесты
// проверяют только HTTP-слой и выдачу cookie.
type fakeAuthService struct {
	user     *entities.User
	loginErr error
}

func (s *fakeAuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.user, nil
}

func (s *fakeAuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, apperrors.ErrUserNotFound
	}
	return s.user, nil
}

func (s *fakeAuthService) ChangePassword(ctx context.Context, userID uint64, payload dto.ChangePasswordDTO) error {
	return nil
}

func newAuthTestEnv(t *testing.T, fake *fakeAuthService) (*echo.Echo, *AuthController, service.JWTService) {
	t.Helper()

	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	jwtSvc := service.NewJWTService("controller-test-secret", time.Minute*15, time.Hour*24, zap.NewNop())
	ctrl := NewAuthController(fake, jwtSvc, zap.NewNop())
	return e, ctrl, jwtSvc
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthController_Login_Success(t *testing.T) {
	fake := &fakeAuthService{user: &entities.User{
		ID:       5,
		Fio:      "Тест Пользователь",
		Email:    "user@donation.local",
		Role:     authz.RoleAdmin,
		IsActive: true,
	}}
	e, ctrl, jwtSvc := newAuthTestEnv(t, fake)

	body := `{"email":"user@donation.local","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Оба токена приходят и в теле, и в HttpOnly cookie.
	accessCookie := cookieByName(rec, middleware.AccessTokenCookie)
	refreshCookie := cookieByName(rec, refreshTokenCookie)
	require.NotNil(t, accessCookie)
	require.NotNil(t, refreshCookie)
	assert.True(t, accessCookie.HttpOnly)
	assert.True(t, refreshCookie.HttpOnly)
	assert.True(t, accessCookie.Secure)

	claims, err := jwtSvc.ValidateToken(accessCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), claims.UserID)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := jwtSvc.ValidateToken(refreshCookie.Value)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestAuthController_Login_InvalidCredentials(t *testing.T) {
	fake := &fakeAuthService{loginErr: apperrors.ErrInvalidCredentials}
	e, ctrl, _ := newAuthTestEnv(t, fake)

	body := `{"email":"user@donation.local","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, cookieByName(rec, middleware.AccessTokenCookie), "cookie не выдаются при отказе")
}

func TestAuthController_Login_ValidationError(t *testing.T) {
	e, ctrl, _ := newAuthTestEnv(t, &fakeAuthService{})

	body := `{"email":"not-an-email","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthController_RefreshToken_RotatesPair(t *testing.T) {
	e, ctrl, jwtSvc := newAuthTestEnv(t, &fakeAuthService{})

	identity := service.Identity{UserID: 5, Email: "user@donation.local", Role: authz.RoleEditor}
	oldRefresh, err := jwtSvc.IssueRefreshToken(identity)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh_token", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: oldRefresh})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.RefreshToken(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dto.TokenPairDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	require.NotEmpty(t, envelope.Data.RefreshToken)
	assert.NotEqual(t, oldRefresh, envelope.Data.RefreshToken, "ротация должна выдавать новый refresh")

	claims, err := jwtSvc.ValidateToken(envelope.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, claims.UserID)
	assert.Equal(t, identity.Role, claims.Role)
}

func TestAuthController_RefreshToken_FromBodyWhenNoCookie(t *testing.T) {
	e, ctrl, jwtSvc := newAuthTestEnv(t, &fakeAuthService{})

	refreshToken, err := jwtSvc.IssueRefreshToken(service.Identity{UserID: 5, Role: authz.RoleViewer})
	require.NoError(t, err)

	body := `{"refreshToken":"` + refreshToken + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh_token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthController_RefreshToken_OldTokenUsableAfterRotation(t *testing.T) {
	e, ctrl, jwtSvc := newAuthTestEnv(t, &fakeAuthService{})

	oldRefresh, err := jwtSvc.IssueRefreshToken(service.Identity{UserID: 5, Role: authz.RoleEditor})
	require.NoError(t, err)

	// Сессии stateless: ротация не отзывает старый refresh-токен,
	// он работает до истечения своего срока.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh_token", nil)
		req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: oldRefresh})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, ctrl.RefreshToken(c))
		assert.Equal(t, http.StatusOK, rec.Code, "повторный вызов с тем же refresh-токеном")
	}
}

func TestAuthController_RefreshToken_ExpiredToken(t *testing.T) {
	e, _, _ := newAuthTestEnv(t, &fakeAuthService{})

	expiredSvc := service.NewJWTService("controller-test-secret", time.Minute*15, -time.Minute, zap.NewNop())
	ctrl := NewAuthController(&fakeAuthService{}, expiredSvc, zap.NewNop())

	expiredRefresh, err := expiredSvc.IssueRefreshToken(service.Identity{UserID: 5, Role: authz.RoleEditor})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh_token", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: expiredRefresh})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "при отказе cookie не переустанавливаются")
}

func TestAuthController_RefreshToken_RejectsAccessToken(t *testing.T) {
	e, ctrl, jwtSvc := newAuthTestEnv(t, &fakeAuthService{})

	accessToken, err := jwtSvc.IssueAccessToken(service.Identity{UserID: 5, Role: authz.RoleViewer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh_token", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: accessToken})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthController_RefreshToken_MissingToken(t *testing.T) {
	e, ctrl, _ := newAuthTestEnv(t, &fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh_token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthController_Logout_ClearsCookies(t *testing.T) {
	e, ctrl, _ := newAuthTestEnv(t, &fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	accessCookie := cookieByName(rec, middleware.AccessTokenCookie)
	refreshCookie := cookieByName(rec, refreshTokenCookie)
	require.NotNil(t, accessCookie)
	require.NotNil(t, refreshCookie)
	assert.Empty(t, accessCookie.Value)
	assert.Negative(t, refreshCookie.MaxAge)
}
