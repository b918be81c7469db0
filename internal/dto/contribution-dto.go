package dto

import "time"

type CreateContributionDTO struct {
	DonorName     string     `json:"donor_name" validate:"required,min=2,max=150"`
	Phone         *string    `json:"phone" validate:"omitempty,e164_TJ"`
	Address       *string    `json:"address" validate:"omitempty,max=300"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	Purpose       string     `json:"purpose" validate:"required,oneof=general construction zakat sadaqah"`
	Note          *string    `json:"note" validate:"omitempty,max=500"`
	ContributedAt *time.Time `json:"contributed_at"`
}

type UpdateContributionDTO struct {
	DonorName     *string    `json:"donor_name" validate:"omitempty,min=2,max=150"`
	Phone         *string    `json:"phone" validate:"omitempty,e164_TJ"`
	Address       *string    `json:"address" validate:"omitempty,max=300"`
	Amount        *float64   `json:"amount" validate:"omitempty,gt=0"`
	Purpose       *string    `json:"purpose" validate:"omitempty,oneof=general construction zakat sadaqah"`
	Note          *string    `json:"note" validate:"omitempty,max=500"`
	ContributedAt *time.Time `json:"contributed_at"`
}
