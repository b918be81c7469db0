package entities

import (
	"time"

	"donation-system/pkg/types"
)

// Contribution — пожертвование с номером квитанции.
type Contribution struct {
	ID            uint64    `json:"id" db:"id"`
	ReceiptNo     string    `json:"receipt_no" db:"receipt_no"`
	DonorName     string    `json:"donor_name" db:"donor_name"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	Address       *string   `json:"address,omitempty" db:"address"`
	Amount        float64   `json:"amount" db:"amount"`
	Purpose       string    `json:"purpose" db:"purpose"`
	Note          *string   `json:"note,omitempty" db:"note"`
	ContributedAt time.Time `json:"contributed_at" db:"contributed_at"`

	types.BaseEntity
}
