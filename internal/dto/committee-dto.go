package dto

type CreateCommitteeDTO struct {
	Name         string  `json:"name" validate:"required,min=2,max=150"`
	Designation  string  `json:"designation" validate:"required,min=2,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,e164_TJ"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
	IsActive     *bool   `json:"is_active"`
}

type UpdateCommitteeDTO struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=150"`
	Designation  *string `json:"designation" validate:"omitempty,min=2,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,e164_TJ"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
	IsActive     *bool   `json:"is_active"`
}
