package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	CustomerNo string       `json:"customer_no" db:"customer_no"`
	FullName   string       `json:"full_name" db:"full_name"`
	NationalID *string      `json:"national_id,omitempty" db:"national_id"`
	TaxID      *string      `json:"tax_id,omitempty" db:"tax_id"`
	Phone      *string      `json:"phone,omitempty" db:"phone"`
	Type       CustomerType `json:"type" db:"customer_type"`
	RiskScore  int          `json:"risk_score" db:"risk_score"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}

// IdentityKey returns the unique national/tax identifier of the customer,
// whichever kind it carries.
func (c *Customer) IdentityKey() string {
	if c.NationalID != nil && *c.NationalID != "" {
		return *c.NationalID
	}
	if c.TaxID != nil && *c.TaxID != "" {
		return *c.TaxID
	}
	return ""
}

type CustomerAsset struct {
	ID             uuid.UUID `json:"id" db:"id"`
	CustomerID     uuid.UUID `json:"customer_id" db:"customer_id"`
	AssetType      AssetType `json:"asset_type" db:"asset_type"`
	Description    string    `json:"description" db:"description"`
	Details        *string   `json:"details,omitempty" db:"details"`
	EstimatedValue float64   `json:"estimated_value" db:"estimated_value"`
	AutoCreated    bool      `json:"auto_created" db:"auto_created"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
