// Файл: internal/entities/user-entity.go
package entities

import (
	"time"

	"donation-system/internal/authz"
	"donation-system/pkg/types"
)

type User struct {
	ID    uint64 `json:"id" db:"id"`
	Fio   string `json:"fio" db:"fio"`
	Email string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	Role     authz.Role `json:"role" db:"role"`
	IsActive bool       `json:"is_active" db:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`

	types.BaseEntity
}
