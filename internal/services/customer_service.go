package services

import (
	"fmt"
	"math/rand"

	"agency-service/internal/models"
	"agency-service/pkg/utils"

	"github.com/google/uuid"
)

type customerStore interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	Search(q string, limit, offset int) ([]models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uuid.UUID) error
}

type customerPolicyStore interface {
	GetByCustomerID(customerID uuid.UUID) ([]models.Policy, error)
}

type customerAssetStore interface {
	GetByCustomerID(customerID uuid.UUID) ([]models.CustomerAsset, error)
	Create(asset *models.CustomerAsset) error
}

// CustomerDetail bundles a customer with its policies and assets for the
// detail screen. Policy statuses are already derived.
type CustomerDetail struct {
	Customer models.Customer        `json:"customer"`
	Policies []models.Policy        `json:"policies"`
	Assets   []models.CustomerAsset `json:"assets"`
}

type CustomerService struct {
	customers customerStore
	policies  customerPolicyStore
	assets    customerAssetStore
	now       nowFunc
}

func NewCustomerService(customers customerStore, policies customerPolicyStore, assets customerAssetStore) *CustomerService {
	return &CustomerService{
		customers: customers,
		policies:  policies,
		assets:    assets,
		now:       defaultNow,
	}
}

func (s *CustomerService) Create(req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid customer request: %w", err)
	}

	customer := &models.Customer{
		CustomerNo: fmt.Sprintf("GH-%05d", rand.Intn(90000)+10000),
		FullName:   req.FullName,
		NationalID: req.NationalID,
		TaxID:      req.TaxID,
		Type:       models.CustomerIndividual,
		RiskScore:  50,
	}
	if req.Type != "" {
		customer.Type = models.CustomerType(req.Type)
	} else if req.TaxID != nil {
		customer.Type = models.CustomerCorporate
	}
	if req.RiskScore != nil {
		customer.RiskScore = *req.RiskScore
	}
	if req.Phone != nil && *req.Phone != "" {
		phone := utils.FormatPhone(*req.Phone)
		customer.Phone = &phone
	}

	if err := s.customers.Create(customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) Get(id uuid.UUID) (*CustomerDetail, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		return nil, err
	}

	policies, err := s.policies.GetByCustomerID(id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range policies {
		policies[i].Status = policies[i].DerivedStatus(now)
	}

	assets, err := s.assets.GetByCustomerID(id)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{
		Customer: *customer,
		Policies: policies,
		Assets:   assets,
	}, nil
}

func (s *CustomerService) List(q string, limit, offset int) ([]models.Customer, error) {
	return s.customers.Search(q, limit, offset)
}

func (s *CustomerService) Update(id uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid customer update: %w", err)
	}

	customer, err := s.customers.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Phone != nil {
		phone := utils.FormatPhone(*req.Phone)
		customer.Phone = &phone
	}
	if req.RiskScore != nil {
		customer.RiskScore = *req.RiskScore
	}

	if err := s.customers.Update(customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) Delete(id uuid.UUID) error {
	return s.customers.Delete(id)
}

// AddAsset records a manually entered asset for a customer.
func (s *CustomerService) AddAsset(customerID uuid.UUID, req *models.CreateAssetRequest) (*models.CustomerAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid asset request: %w", err)
	}

	if _, err := s.customers.GetByID(customerID); err != nil {
		return nil, err
	}

	asset := &models.CustomerAsset{
		CustomerID:     customerID,
		AssetType:      req.AssetType,
		Description:    req.Description,
		Details:        req.Details,
		EstimatedValue: req.EstimatedValue,
		AutoCreated:    false,
	}
	if err := s.assets.Create(asset); err != nil {
		return nil, err
	}

	return asset, nil
}
