package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"donation-system/internal/authz"
	apperrors "donation-system/pkg/errors"
)

// Identity — полезная нагрузка токена: кто делает запрос. Встраивается
// в подписанный токен и при проверке не перечитывается из БД.
type Identity struct {
	UserID uint64
	Email  string
	Fio    string
	Role   authz.Role
}

type JwtCustomClaim struct {
	UserID         uint64     `json:"userId"`
	Email          string     `json:"email"`
	Fio            string     `json:"fio"`
	Role           authz.Role `json:"role"`
	IsRefreshToken bool       `json:"isRefresh"`
	jwt.RegisteredClaims
}

func (c *JwtCustomClaim) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email, Fio: c.Fio, Role: c.Role}
}

type JWTService interface {
	IssueAccessToken(identity Identity) (string, error)
	IssueRefreshToken(identity Identity) (string, error)
	GenerateTokens(identity Identity) (string, string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type jwtService struct {
	secretKey       string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	logger          *zap.Logger
}

// NewJWTService получает секрет и времена жизни через конструктор.
// Никакого глобального состояния: один экземпляр на процесс, читается
// конкурентно без синхронизации.
func NewJWTService(secretKey string, accessTokenExp, refreshTokenExp time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey:       secretKey,
		accessTokenExp:  accessTokenExp,
		refreshTokenExp: refreshTokenExp,
		logger:          logger,
	}
}

func (s *jwtService) sign(identity Identity, ttl time.Duration, isRefresh bool) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaim{
		UserID:         identity.UserID,
		Email:          identity.Email,
		Fio:            identity.Fio,
		Role:           identity.Role,
		IsRefreshToken: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) IssueAccessToken(identity Identity) (string, error) {
	return s.sign(identity, s.accessTokenExp, false)
}

func (s *jwtService) IssueRefreshToken(identity Identity) (string, error) {
	return s.sign(identity, s.refreshTokenExp, true)
}

// GenerateTokens выпускает пару access+refresh с одинаковой полезной
// нагрузкой. Вызывается при логине и при каждой ротации.
func (s *jwtService) GenerateTokens(identity Identity) (string, string, error) {
	accessToken, err := s.IssueAccessToken(identity)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.IssueRefreshToken(identity)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.accessTokenExp
}

func (s *jwtService) GetRefreshTokenTTL() time.Duration {
	return s.refreshTokenExp
}

// ValidateToken проверяет подпись и срок действия. Просроченный,
// битый и подделанный токены различаются сентинельными ошибками,
// но наружу все они отдаются одинаковым 401.
func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})

	if err != nil {
		mapped := mapJwtError(err)
		s.logger.Warn("Токен не прошел проверку", zap.Error(mapped))
		return nil, mapped
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		s.logger.Warn("Токен невалиден или не удалось извлечь claims")
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func mapJwtError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return apperrors.ErrTokenNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return apperrors.ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return apperrors.ErrTokenMalformed
	case errors.Is(err, apperrors.ErrInvalidSigningMethod):
		return apperrors.ErrInvalidSigningMethod
	default:
		return apperrors.ErrInvalidToken
	}
}
