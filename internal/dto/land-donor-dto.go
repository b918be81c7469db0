package dto

type CreateLandDonorDTO struct {
	Name       string  `json:"name" validate:"required,min=2,max=150"`
	FatherName *string `json:"father_name" validate:"omitempty,max=150"`
	Address    *string `json:"address" validate:"omitempty,max=300"`
	LandAmount float64 `json:"land_amount" validate:"required,gt=0"`
	Note       *string `json:"note" validate:"omitempty,max=500"`
}

type UpdateLandDonorDTO struct {
	Name       *string  `json:"name" validate:"omitempty,min=2,max=150"`
	FatherName *string  `json:"father_name" validate:"omitempty,max=150"`
	Address    *string  `json:"address" validate:"omitempty,max=300"`
	LandAmount *float64 `json:"land_amount" validate:"omitempty,gt=0"`
	Note       *string  `json:"note" validate:"omitempty,max=500"`
}
