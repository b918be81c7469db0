package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"donation-system/internal/authz"
	"donation-system/internal/dto"
	"donation-system/pkg/api"
	"donation-system/pkg/contextkeys"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/service"
)

const AccessTokenCookie = "accessToken"

// AuthMiddleware — единственная точка входа в защищенные операции:
// сначала аутентификация токена, затем (опционально) проверка права,
// и только потом управление получает обработчик.
type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth проверяет access-токен запроса. Без валидного токена
// обработчик не вызывается вовсе.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := m.extractToken(c)
		if err != nil {
			m.logger.Warn("AuthMiddleware: токен в запросе отсутствует", zap.Error(err))
			return api.ErrorResponse(c, err, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: ошибка валидации токена", zap.Error(err))
			return api.ErrorResponse(c, err, m.logger)
		}

		// Refresh-токен живет дольше и годится только для ротации.
		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: попытка доступа с refresh-токеном", zap.Uint64("userID", claims.UserID))
			return api.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		userClaims := &dto.UserClaims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Fio:    claims.Fio,
			Role:   claims.Role,
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.ClaimsKey, userClaims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequirePermission пропускает дальше только роли, которым статичная
// таблица прав дает permission. Валидная личность без права — 403.
func (m *AuthMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Request().Context().Value(contextkeys.ClaimsKey).(*dto.UserClaims)
			if !ok || claims == nil {
				// RequirePermission без Auth — ошибка конфигурации маршрута.
				m.logger.Error("RequirePermission: claims не найдены в контексте",
					zap.String("permission", permission), zap.String("uri", c.Request().RequestURI))
				return api.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}

			if !authz.RoleGrants(claims.Role, permission) {
				m.logger.Warn("RequirePermission: недостаточно прав",
					zap.Uint64("userID", claims.UserID),
					zap.String("role", string(claims.Role)),
					zap.String("permission", permission),
				)
				return api.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}

			return next(c)
		}
	}
}

// extractToken достает access-токен: сначала из cookie, затем из
// заголовка Authorization. Cookie имеет приоритет.
func (m *AuthMiddleware) extractToken(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", apperrors.ErrEmptyAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.ErrInvalidAuthHeader
	}

	return parts[1], nil
}

// ClearAuthCookies обнуляет оба токена клиента. Используется при выходе.
func ClearAuthCookies(c echo.Context) {
	for _, name := range []string{AccessTokenCookie, "refreshToken"} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}
