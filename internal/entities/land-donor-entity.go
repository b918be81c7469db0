package entities

import "donation-system/pkg/types"

// LandDonor — даритель земельного участка под строительство.
type LandDonor struct {
	ID         uint64  `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	FatherName *string `json:"father_name,omitempty" db:"father_name"`
	Address    *string `json:"address,omitempty" db:"address"`
	LandAmount float64 `json:"land_amount" db:"land_amount"`
	Note       *string `json:"note,omitempty" db:"note"`

	types.BaseEntity
}
