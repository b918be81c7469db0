package dto

type CreateUserDTO struct {
	Fio      string `json:"fio" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin editor viewer"`
	IsActive *bool  `json:"is_active"`
}

type UpdateUserDTO struct {
	Fio      *string `json:"fio" validate:"omitempty,min=2,max=150"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	IsActive *bool   `json:"is_active"`
}

// AdminResetPasswordDTO — смена пароля пользователя администратором.
type AdminResetPasswordDTO struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
