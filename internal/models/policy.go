package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

type Policy struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	PolicyNumber string          `json:"policy_number" db:"policy_number"`
	CustomerID   *uuid.UUID      `json:"customer_id,omitempty" db:"customer_id"`
	CompanyID    uuid.UUID       `json:"company_id" db:"company_id"`
	ProductID    *uuid.UUID      `json:"product_id,omitempty" db:"product_id"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty" db:"category_id"`
	PolicyType   string          `json:"policy_type" db:"policy_type"`
	StartDate    time.Time       `json:"start_date" db:"start_date"`
	EndDate      time.Time       `json:"end_date" db:"end_date"`
	Premium      decimal.Decimal `json:"premium" db:"premium"`
	Commission   decimal.Decimal `json:"commission" db:"commission"`
	Status       PolicyStatus    `json:"status" db:"status"`
	Description  *string         `json:"description,omitempty" db:"description"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// DerivedStatus computes the read-time status: a stored Active policy whose
// end date has passed reports Expired.
func (p *Policy) DerivedStatus(now time.Time) PolicyStatus {
	if p.Status == PolicyActive && p.EndDate.Before(now) {
		return PolicyExpired
	}
	return p.Status
}

// PolicyListItem is a policy row joined with its customer and company names
// for list screens.
type PolicyListItem struct {
	Policy
	CustomerName *string `json:"customer_name,omitempty" db:"customer_name"`
	CompanyName  string  `json:"company_name" db:"company_name"`
}

type PolicyStats struct {
	Total     int `json:"total" db:"total"`
	Active    int `json:"active" db:"active"`
	Expiring  int `json:"expiring" db:"expiring"`
	Expired   int `json:"expired" db:"expired"`
	Potential int `json:"potential" db:"potential"`
}
