package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RefreshDTO — refresh-токен в теле запроса. Используется, только если
// нет cookie: cookie имеет приоритет.
type RefreshDTO struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,nefield=CurrentPassword"`
}

type AuthResponseDTO struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         UserPublicDTO `json:"user"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserPublicDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Fio   string `json:"fio"`
	Role  string `json:"role"`
}

type UserProfileDTO struct {
	ID          uint64   `json:"id"`
	Email       string   `json:"email"`
	Fio         string   `json:"fio"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
