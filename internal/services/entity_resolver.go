package services

import (
	"fmt"
	"math/rand"
	"strings"

	"agency-service/internal/models"
	"agency-service/pkg/utils"

	"github.com/google/uuid"
)

// CustomerCreator persists customers the resolver materializes mid-batch.
type CustomerCreator interface {
	Create(customer *models.Customer) error
}

// EntityResolver maps normalized rows onto master data, creating customers
// on first sight so the rest of the batch reuses them.
type EntityResolver struct {
	index     *MasterIndex
	customers CustomerCreator
}

func NewEntityResolver(index *MasterIndex, customers CustomerCreator) *EntityResolver {
	return &EntityResolver{index: index, customers: customers}
}

// ResolveCustomer returns the customer a row belongs to. Identity number
// wins over name; a row matching neither creates a new customer typed from
// its identity number length (10 digits is a corporate tax number, 11 a
// personal national number).
func (r *EntityResolver) ResolveCustomer(row *PolicyRow) (uuid.UUID, error) {
	identityNo := utils.DigitsOnly(row.NationalOrTaxID)

	if id, ok := r.index.CustomerByIdentity(identityNo); ok {
		return id, nil
	}
	if id, ok := r.index.CustomerByNameKey(row.CustomerKey); ok {
		return id, nil
	}

	customer := &models.Customer{
		CustomerNo: fmt.Sprintf("GH-%05d", rand.Intn(90000)+10000),
		FullName:   row.CustomerName,
		Type:       models.CustomerIndividual,
		RiskScore:  50,
	}
	switch len(identityNo) {
	case 10:
		customer.TaxID = &identityNo
		customer.Type = models.CustomerCorporate
	case 11:
		customer.NationalID = &identityNo
	default:
		if identityNo != "" {
			customer.NationalID = &identityNo
		}
	}
	if row.Phone != "" {
		phone := utils.FormatPhone(row.Phone)
		customer.Phone = &phone
	}

	if err := r.customers.Create(customer); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create customer %q: %w", row.CustomerName, err)
	}
	r.index.AddCustomer(customer)

	return customer.ID, nil
}

// ResolveCompany finds the insurer the row names. No match means the row is
// skipped upstream; policies are never attached to a guessed company.
func (r *EntityResolver) ResolveCompany(row *PolicyRow) (uuid.UUID, bool) {
	return r.index.MatchCompany(row.CompanyName)
}

// ResolveProduct matches the row's product column, falling back to its
// branch label when the sheet has no product column at all.
func (r *EntityResolver) ResolveProduct(row *PolicyRow) (ProductMatch, bool) {
	search := row.ProductName
	if search == "" {
		search = row.TypeLabel
	}
	return r.index.MatchProduct(search)
}

// ClassifyBranch buckets a free-text policy type label into a branch by
// keyword. Checks are ordered; DASK folds into Konut because the sheets
// label earthquake cover either way.
func ClassifyBranch(label string) models.PolicyBranch {
	l := FoldTurkish(label)
	switch {
	case strings.Contains(l, "trafik"):
		return models.BranchTraffic
	case strings.Contains(l, "kasko"):
		return models.BranchCasco
	case strings.Contains(l, "konut") || strings.Contains(l, "dask"):
		return models.BranchDwelling
	case strings.Contains(l, "isyeri"):
		return models.BranchWorkplace
	case strings.Contains(l, "saglik"):
		return models.BranchHealth
	case strings.Contains(l, "seyahat"):
		return models.BranchTravel
	default:
		return models.BranchOther
	}
}
