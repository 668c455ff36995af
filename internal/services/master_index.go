package services

import (
	"strings"

	"agency-service/internal/models"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MasterIndex holds the in-memory lookup structures one import batch resolves
// against. It is built once from a snapshot of master data, then updated as
// the batch creates customers so later rows can find them.
type MasterIndex struct {
	customerIDByKey map[string]uuid.UUID
	companies       []models.Company
	products        []productEntry
	categoryNames   map[uuid.UUID]string
	lower           cases.Caser
}

type productEntry struct {
	id         uuid.UUID
	categoryID uuid.UUID
	nameLower  string
	aliases    []string
}

// ProductMatch carries the resolved product with its category so the policy
// row can record both without a second lookup.
type ProductMatch struct {
	ProductID    uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
}

func NewMasterIndex(
	customers []models.Customer,
	companies []models.Company,
	categories []models.InsuranceCategory,
	products []models.InsuranceProduct,
) *MasterIndex {
	idx := &MasterIndex{
		customerIDByKey: make(map[string]uuid.UUID, len(customers)*2),
		companies:       companies,
		categoryNames:   make(map[uuid.UUID]string, len(categories)),
		lower:           cases.Lower(language.Turkish),
	}

	for _, category := range categories {
		idx.categoryNames[category.ID] = category.Name
	}

	idx.products = make([]productEntry, 0, len(products))
	for _, product := range products {
		entry := productEntry{
			id:         product.ID,
			categoryID: product.CategoryID,
			nameLower:  idx.lower.String(product.Name),
		}
		for _, alias := range product.Aliases {
			entry.aliases = append(entry.aliases, idx.lower.String(alias))
		}
		idx.products = append(idx.products, entry)
	}

	for i := range customers {
		idx.AddCustomer(&customers[i])
	}

	return idx
}

// AddCustomer indexes a customer under its identity number and its folded
// name. A later customer with the same name overwrites the earlier key, so
// name matches always resolve to the most recently seen record.
func (idx *MasterIndex) AddCustomer(customer *models.Customer) {
	if customer.NationalID != nil && *customer.NationalID != "" {
		idx.customerIDByKey[*customer.NationalID] = customer.ID
	}
	if customer.TaxID != nil && *customer.TaxID != "" {
		idx.customerIDByKey[*customer.TaxID] = customer.ID
	}
	if key := idx.lower.String(customer.FullName); key != "" {
		idx.customerIDByKey[key] = customer.ID
	}
}

func (idx *MasterIndex) CustomerByIdentity(identityNo string) (uuid.UUID, bool) {
	if identityNo == "" {
		return uuid.Nil, false
	}
	id, ok := idx.customerIDByKey[identityNo]
	return id, ok
}

func (idx *MasterIndex) CustomerByNameKey(nameKey string) (uuid.UUID, bool) {
	if nameKey == "" {
		return uuid.Nil, false
	}
	id, ok := idx.customerIDByKey[nameKey]
	return id, ok
}

// MatchCompany finds the insurer whose registered name and the sheet's
// company cell contain each other in either direction. Sheets abbreviate
// freely ("Anadolu" for "Anadolu Sigorta") and sometimes do the opposite,
// so the containment runs both ways. First match wins.
func (idx *MasterIndex) MatchCompany(name string) (uuid.UUID, bool) {
	needle := idx.lower.String(strings.TrimSpace(name))
	if needle == "" {
		return uuid.Nil, false
	}
	for _, company := range idx.companies {
		registered := idx.lower.String(company.Name)
		if strings.Contains(registered, needle) || strings.Contains(needle, registered) {
			return company.ID, true
		}
	}
	return uuid.Nil, false
}

// MatchProduct resolves a product label, preferring an exact name match over
// containment so "Kasko" never lands on "Genişletilmiş Kasko" when both
// exist. Aliases are checked by containment only.
func (idx *MasterIndex) MatchProduct(label string) (ProductMatch, bool) {
	needle := idx.lower.String(strings.TrimSpace(label))
	if needle == "" {
		return ProductMatch{}, false
	}

	for _, entry := range idx.products {
		if entry.nameLower == needle {
			return idx.matchFor(entry), true
		}
	}

	for _, entry := range idx.products {
		if strings.Contains(entry.nameLower, needle) || strings.Contains(needle, entry.nameLower) {
			return idx.matchFor(entry), true
		}
		for _, alias := range entry.aliases {
			if strings.Contains(needle, alias) || strings.Contains(alias, needle) {
				return idx.matchFor(entry), true
			}
		}
	}

	return ProductMatch{}, false
}

func (idx *MasterIndex) matchFor(entry productEntry) ProductMatch {
	return ProductMatch{
		ProductID:    entry.id,
		CategoryID:   entry.categoryID,
		CategoryName: idx.categoryNames[entry.categoryID],
	}
}
