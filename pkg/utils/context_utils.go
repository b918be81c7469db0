// Файл: pkg/utils/context_utils.go

package utils

import (
	"context"

	"donation-system/internal/dto"
	"donation-system/pkg/contextkeys"
	apperrors "donation-system/pkg/errors"
)

// GetClaimsFromContext достает проверенные данные пользователя,
// положенные в контекст auth-middleware. Отсутствие означает, что
// обработчик вызван в обход guard'а.
func GetClaimsFromContext(ctx context.Context) (*dto.UserClaims, error) {
	claims, ok := ctx.Value(contextkeys.ClaimsKey).(*dto.UserClaims)
	if !ok || claims == nil {
		return nil, apperrors.ErrClaimsNotFoundInContext
	}
	return claims, nil
}

// GetUserIDFromCtx — сокращение для обработчиков, которым нужен только ID.
func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
