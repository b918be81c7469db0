// Файл: internal/dto/claims_dto.go
package dto

import "donation-system/internal/authz"

// UserClaims — проверенные данные пользователя, доступные обработчику
// в контексте запроса. Живут ровно один запрос.
type UserClaims struct {
	UserID uint64
	Email  string
	Fio    string
	Role   authz.Role
}

// Permissions возвращает эффективный набор прав роли пользователя.
func (c *UserClaims) Permissions() []string {
	return authz.PermissionsOf(c.Role)
}
