package entities

import "time"

// SiteSetting — единственная строка с настройками сайта.
type SiteSetting struct {
	ID        uint64     `json:"id" db:"id"`
	SiteName  string     `json:"site_name" db:"site_name"`
	Tagline   *string    `json:"tagline,omitempty" db:"tagline"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	Email     *string    `json:"email,omitempty" db:"email"`
	Address   *string    `json:"address,omitempty" db:"address"`
	About     *string    `json:"about,omitempty" db:"about"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}
