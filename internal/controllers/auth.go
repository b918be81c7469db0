package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/services"
	"donation-system/pkg/api"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/middleware"
	"donation-system/pkg/service"
	"donation-system/pkg/utils"
)

const refreshTokenCookie = "refreshToken"

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return api.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных для входа"))
	}

	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: ошибка авторизации", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	return ctrl.issueTokensAndRespond(c, user, "Авторизация прошла успешно")
}

// RefreshToken ротирует пару токенов: каждый успешный вызов выдает
// новый access и новый refresh. Старый refresh не отзывается —
// дизайн сессий полностью stateless.
func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	refreshTokenString := ""
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		refreshTokenString = cookie.Value
	} else {
		var payload dto.RefreshDTO
		if err := c.Bind(&payload); err == nil {
			refreshTokenString = payload.RefreshToken
		}
	}

	if refreshTokenString == "" {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(refreshTokenString)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.ErrTokenIsNotRefresh)
	}

	// Полезная нагрузка переносится из проверенного refresh-токена,
	// повторного чтения пользователя из БД нет.
	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(claims.Identity())
	if err != nil {
		ctrl.logger.Error("RefreshToken: не удалось сгенерировать токены", zap.Error(err), zap.Uint64("userID", claims.UserID))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setAuthCookies(c, accessToken, refreshToken)

	response := dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	return api.SuccessOne(c, http.StatusOK, "Токены успешно обновлены", response)
}

// Logout всегда успешен: повторный выход без сессии — не ошибка.
func (ctrl *AuthController) Logout(c echo.Context) error {
	middleware.ClearAuthCookies(c)
	return api.SuccessOne[any](c, http.StatusOK, "Вы успешно вышли из системы.", nil)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	claims, err := utils.GetClaimsFromContext(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("Me: не удалось получить claims из контекста в защищенном маршруте")
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	response := dto.UserProfileDTO{
		ID:          user.ID,
		Email:       user.Email,
		Fio:         user.Fio,
		Role:        string(user.Role),
		Permissions: claims.Permissions(),
	}

	return api.SuccessOne(c, http.StatusOK, "Профиль пользователя успешно получен", response)
}

// ChangePassword доступен любой аутентифицированной личности,
// отдельного пермишена не требует.
func (ctrl *AuthController) ChangePassword(c echo.Context) error {
	claims, err := utils.GetClaimsFromContext(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	var payload dto.ChangePasswordDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.authService.ChangePassword(c.Request().Context(), claims.UserID, payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	return api.SuccessOne[any](c, http.StatusOK, "Пароль успешно изменен.", nil)
}

func (ctrl *AuthController) issueTokensAndRespond(c echo.Context, user *entities.User, message string) error {
	identity := service.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Fio:    user.Fio,
		Role:   user.Role,
	}

	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(identity)
	if err != nil {
		ctrl.logger.Error("Не удалось сгенерировать токены", zap.Error(err), zap.Uint64("userID", user.ID))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setAuthCookies(c, accessToken, refreshToken)

	response := dto.AuthResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserPublicDTO{
			ID:    user.ID,
			Email: user.Email,
			Fio:   user.Fio,
			Role:  string(user.Role),
		},
	}

	return api.SuccessOne(c, http.StatusOK, message, response)
}

func (ctrl *AuthController) setAuthCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(ctrl.jwtSvc.GetAccessTokenTTL()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		Expires:  time.Now().Add(ctrl.jwtSvc.GetRefreshTokenTTL()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
