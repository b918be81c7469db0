package contextkeys

type contextKey string

const (
	// ClaimsKey — проверенные данные пользователя (см. dto.UserClaims),
	// которые middleware кладет в контекст запроса после аутентификации.
	ClaimsKey contextKey = "UserClaims"
)
