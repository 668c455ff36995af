package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agency-service/internal/models"
)

// Store interfaces the import pipeline depends on. Concrete repositories
// satisfy them; tests swap in fakes.
type CustomerStore interface {
	GetAll() ([]models.Customer, error)
	Create(customer *models.Customer) error
}

type CompanyStore interface {
	GetAll() ([]models.Company, error)
}

type ProductStore interface {
	GetAllProducts() ([]models.InsuranceProduct, error)
	GetAllCategories() ([]models.InsuranceCategory, error)
}

type PolicyStore interface {
	Create(policy *models.Policy) error
}

// SummaryCache keeps the last import outcome around for the dashboard.
type SummaryCache interface {
	StoreLastSummary(ctx context.Context, summary *models.ImportSummary) error
}

// ImportNotifier pushes a completion notification to the user who ran the
// import.
type ImportNotifier interface {
	NotifyImportCompleted(ctx context.Context, userID string, summary models.ImportSummary) error
}

// PolicyImportService runs the bulk import pipeline: normalize each row,
// resolve it against master data, persist the policy, and derive implied
// assets. Rows are independent; one bad row never stops the batch.
type PolicyImportService struct {
	customers CustomerStore
	companies CompanyStore
	products  ProductStore
	policies  PolicyStore
	assets    AssetStore
	cache     SummaryCache
	notifier  ImportNotifier
}

func NewPolicyImportService(
	customers CustomerStore,
	companies CompanyStore,
	products ProductStore,
	policies PolicyStore,
	assets AssetStore,
	cache SummaryCache,
	notifier ImportNotifier,
) *PolicyImportService {
	return &PolicyImportService{
		customers: customers,
		companies: companies,
		products:  products,
		policies:  policies,
		assets:    assets,
		cache:     cache,
		notifier:  notifier,
	}
}

// ImportPolicies processes one batch of raw rows. Master data is snapshotted
// once up front; a failure there aborts the whole batch since nothing could
// be resolved. After that each row lands in exactly one of the summary
// counters: succeeded, errored, or skipped (no insurer match). Rows with
// neither a name nor a policy number are dropped before counting.
func (s *PolicyImportService) ImportPolicies(ctx context.Context, userID string, rows []RawRow) (*models.ImportSummary, error) {
	customers, err := s.customers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load customers for import: %w", err)
	}
	companies, err := s.companies.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load companies for import: %w", err)
	}
	categories, err := s.products.GetAllCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for import: %w", err)
	}
	products, err := s.products.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to load products for import: %w", err)
	}

	index := NewMasterIndex(customers, companies, categories, products)
	normalizer := NewRowNormalizer()
	resolver := NewEntityResolver(index, s.customers)
	deriver := NewAssetDeriver(s.assets)

	summary := &models.ImportSummary{}

	for i, raw := range rows {
		row, ok := normalizer.Normalize(raw)
		if !ok {
			continue
		}

		customerID, err := resolver.ResolveCustomer(row)
		if err != nil {
			summary.Errored++
			slog.Error("import row failed", "row", i+1, "customer", row.CustomerName, "error", err)
			continue
		}

		companyID, ok := resolver.ResolveCompany(row)
		if !ok {
			summary.Skipped++
			slog.Warn("import row skipped, no insurer match", "row", i+1, "company", row.CompanyName)
			continue
		}

		branch := ClassifyBranch(row.TypeLabel)
		policy := &models.Policy{
			PolicyNumber: row.PolicyNumber,
			CustomerID:   &customerID,
			CompanyID:    companyID,
			PolicyType:   string(branch),
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			Premium:      row.Premium,
			Commission:   row.Commission,
			Status:       models.PolicyActive,
		}
		if policy.PolicyNumber == "" {
			// The row index keeps generated numbers unique within a batch;
			// the timestamp keeps them unique across batches.
			policy.PolicyNumber = fmt.Sprintf("DRAFT-%d-%d", time.Now().UnixMilli(), i+1)
		}
		if row.Description != "" {
			description := row.Description
			policy.Description = &description
		}
		if match, ok := resolver.ResolveProduct(row); ok {
			policy.ProductID = &match.ProductID
			policy.CategoryID = &match.CategoryID
			policy.PolicyType = match.CategoryName
		}

		if err := s.policies.Create(policy); err != nil {
			summary.Errored++
			slog.Error("import row failed", "row", i+1, "policy_number", policy.PolicyNumber, "error", err)
			continue
		}
		summary.Succeeded++

		if err := deriver.DeriveFromPolicy(customerID, branch); err != nil {
			slog.Warn("derived asset not created", "row", i+1, "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.StoreLastSummary(ctx, summary); err != nil {
			slog.Warn("failed to cache import summary", "error", err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.NotifyImportCompleted(ctx, userID, *summary); err != nil {
			slog.Warn("failed to publish import notification", "error", err)
		}
	}

	slog.Info("policy import completed",
		"succeeded", summary.Succeeded,
		"errored", summary.Errored,
		"skipped", summary.Skipped)

	return summary, nil
}
