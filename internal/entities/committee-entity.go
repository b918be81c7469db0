package entities

import "donation-system/pkg/types"

// Committee — член комитета фонда (председатель, казначей и т.д.).
type Committee struct {
	ID           uint64  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Designation  string  `json:"designation" db:"designation"`
	Phone        *string `json:"phone,omitempty" db:"phone"`
	Address      *string `json:"address,omitempty" db:"address"`
	DisplayOrder int     `json:"display_order" db:"display_order"`
	IsActive     bool    `json:"is_active" db:"is_active"`

	types.BaseEntity
}
