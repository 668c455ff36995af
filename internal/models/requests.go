package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

type CreateCustomerRequest struct {
	FullName   string  `json:"full_name" validate:"required,min=2"`
	NationalID *string `json:"national_id,omitempty" validate:"omitempty,len=11,numeric"`
	TaxID      *string `json:"tax_id,omitempty" validate:"omitempty,len=10,numeric"`
	Phone      *string `json:"phone,omitempty"`
	Type       string  `json:"type" validate:"omitempty,oneof=Bireysel Kurumsal"`
	RiskScore  *int    `json:"risk_score,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *CreateCustomerRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.NationalID != nil && r.TaxID != nil {
		return fmt.Errorf("national_id and tax_id are mutually exclusive")
	}
	return nil
}

type UpdateCustomerRequest struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Phone     *string `json:"phone,omitempty"`
	RiskScore *int    `json:"risk_score,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *UpdateCustomerRequest) Validate() error {
	return validate.Struct(r)
}

type CreatePolicyRequest struct {
	PolicyNumber string          `json:"policy_number" validate:"required"`
	CustomerID   *uuid.UUID      `json:"customer_id,omitempty"`
	CompanyID    uuid.UUID       `json:"company_id" validate:"required"`
	ProductID    *uuid.UUID      `json:"product_id,omitempty"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	PolicyType   string          `json:"policy_type"`
	StartDate    time.Time       `json:"start_date" validate:"required"`
	EndDate      time.Time       `json:"end_date" validate:"required"`
	Premium      decimal.Decimal `json:"premium"`
	Commission   decimal.Decimal `json:"commission"`
	Status       PolicyStatus    `json:"status" validate:"omitempty,oneof=Active Potential Cancelled"`
	Description  *string         `json:"description,omitempty"`
}

func (r *CreatePolicyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.CompanyID == uuid.Nil {
		return fmt.Errorf("company_id is required")
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("end_date must not precede start_date")
	}
	return nil
}

type UpdatePolicyStatusRequest struct {
	Status PolicyStatus `json:"status" validate:"required,oneof=Active Potential Cancelled"`
}

func (r *UpdatePolicyStatusRequest) Validate() error {
	return validate.Struct(r)
}

type CreateAssetRequest struct {
	AssetType      AssetType `json:"asset_type" validate:"required"`
	Description    string    `json:"description" validate:"required"`
	Details        *string   `json:"details,omitempty"`
	EstimatedValue float64   `json:"estimated_value" validate:"omitempty,min=0"`
}

func (r *CreateAssetRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	switch r.AssetType {
	case AssetVehicle, AssetDwelling, AssetWorkplace:
		return nil
	}
	return fmt.Errorf("asset_type must be one of %s, %s, %s", AssetVehicle, AssetDwelling, AssetWorkplace)
}
