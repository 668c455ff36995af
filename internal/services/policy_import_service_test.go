package services

import (
	"context"
	"errors"
	"testing"

	"agency-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fakeCompanyStore struct {
	companies []models.Company
	err       error
}

func (s *fakeCompanyStore) GetAll() ([]models.Company, error) {
	return s.companies, s.err
}

type fakeProductStore struct {
	products   []models.InsuranceProduct
	categories []models.InsuranceCategory
}

func (s *fakeProductStore) GetAllProducts() ([]models.InsuranceProduct, error) {
	return s.products, nil
}

func (s *fakeProductStore) GetAllCategories() ([]models.InsuranceCategory, error) {
	return s.categories, nil
}

type fakePolicyStore struct {
	policies []models.Policy
	failOn   string
}

func (s *fakePolicyStore) Create(policy *models.Policy) error {
	if s.failOn != "" && policy.PolicyNumber == s.failOn {
		return errors.New("duplicate policy number")
	}
	if policy.ID == uuid.Nil {
		policy.ID = uuid.New()
	}
	s.policies = append(s.policies, *policy)
	return nil
}

type fakeAssetStore struct {
	assets   []models.CustomerAsset
	countErr error
}

func (s *fakeAssetStore) CountByCustomerAndType(customerID uuid.UUID, assetType models.AssetType) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	count := 0
	for _, asset := range s.assets {
		if asset.CustomerID == customerID && asset.AssetType == assetType {
			count++
		}
	}
	return count, nil
}

func (s *fakeAssetStore) Create(asset *models.CustomerAsset) error {
	asset.ID = uuid.New()
	s.assets = append(s.assets, *asset)
	return nil
}

type fakeNotifier struct {
	userID  string
	summary *models.ImportSummary
}

func (n *fakeNotifier) NotifyImportCompleted(_ context.Context, userID string, summary models.ImportSummary) error {
	n.userID = userID
	n.summary = &summary
	return nil
}

func newImportFixture() (*PolicyImportService, *fakeCustomerStore, *fakePolicyStore, *fakeAssetStore, *fakeNotifier) {
	customers := &fakeCustomerStore{}
	companies := &fakeCompanyStore{companies: []models.Company{
		{ID: uuid.New(), Name: "Anadolu Sigorta"},
		{ID: uuid.New(), Name: "AXA Sigorta"},
	}}
	products := &fakeProductStore{}
	policies := &fakePolicyStore{}
	assets := &fakeAssetStore{}
	notifier := &fakeNotifier{}

	service := NewPolicyImportService(customers, companies, products, policies, assets, nil, notifier)
	return service, customers, policies, assets, notifier
}

func importRow(name, tckn, policyNo, company, branch string) RawRow {
	return RawRow{
		"Müşteri Adı":     name,
		"TCKN":            tckn,
		"Poliçe No":       policyNo,
		"Sigorta Şirketi": company,
		"Branş":           branch,
		"Başlangıç":       "01.06.2024",
	}
}

// ============================================================================
// TEST SUITE 1: IMPORT PIPELINE
// ============================================================================

func TestImportPolicies_ReusesCustomerAcrossRows(t *testing.T) {
	service, customers, policies, assets, _ := newImportFixture()

	rows := []RawRow{
		importRow("Mehmet Yılmaz", "11111111111", "TR-001", "Anadolu", "Trafik"),
		importRow("Mehmet Yılmaz", "11111111111", "TR-002", "Anadolu", "Kasko"),
	}

	summary, err := service.ImportPolicies(context.Background(), "user-1", rows)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Errored)
	assert.Equal(t, 0, summary.Skipped)

	assert.Len(t, customers.customers, 1, "both rows belong to one customer")
	require.Len(t, policies.policies, 2)
	assert.Equal(t, *policies.policies[0].CustomerID, *policies.policies[1].CustomerID)

	// Trafik and Kasko both imply a vehicle; only one placeholder is created.
	require.Len(t, assets.assets, 1)
	assert.Equal(t, models.AssetVehicle, assets.assets[0].AssetType)
	assert.True(t, assets.assets[0].AutoCreated)
}

func TestImportPolicies_SkipsUnknownInsurer(t *testing.T) {
	service, _, policies, _, _ := newImportFixture()

	rows := []RawRow{
		importRow("Ali Veli", "22222222222", "TR-003", "Acme Insurance", "Trafik"),
	}

	summary, err := service.ImportPolicies(context.Background(), "user-1", rows)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, policies.policies, "skipped rows never create policies")
}

func TestImportPolicies_CounterConservation(t *testing.T) {
	service, _, policies, _, _ := newImportFixture()
	policies.failOn = "TR-DUP"

	rows := []RawRow{
		importRow("Mehmet Yılmaz", "11111111111", "TR-001", "Anadolu", "Trafik"),
		importRow("Ali Veli", "22222222222", "TR-DUP", "AXA", "Kasko"),
		importRow("Ayşe Çelik", "33333333333", "TR-004", "Acme Insurance", "Konut"),
		{"Müşteri Adı": "", "Prim": "1.000,00"}, // no-op row, excluded from counters
	}

	summary, err := service.ImportPolicies(context.Background(), "user-1", rows)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Errored)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 3, summary.Total())
}

func TestImportPolicies_ProductMatchSetsTypeAndCategory(t *testing.T) {
	service, _, policies, _, _ := newImportFixture()
	category := models.InsuranceCategory{ID: uuid.New(), Name: "Kasko"}
	service.products = &fakeProductStore{
		categories: []models.InsuranceCategory{category},
		products: []models.InsuranceProduct{
			{ID: uuid.New(), CategoryID: category.ID, Name: "Genişletilmiş Kasko"},
		},
	}

	rows := []RawRow{{
		"Müşteri Adı":     "Ali Veli",
		"TCKN":            "22222222222",
		"Poliçe No":       "TR-010",
		"Sigorta Şirketi": "Anadolu",
		"Ürün":            "Genişletilmiş Kasko",
		"Başlangıç":       "01.06.2024",
	}}

	summary, err := service.ImportPolicies(context.Background(), "user-1", rows)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	require.Len(t, policies.policies, 1)
	created := policies.policies[0]
	assert.Equal(t, "Kasko", created.PolicyType)
	require.NotNil(t, created.ProductID)
	require.NotNil(t, created.CategoryID)
	assert.Equal(t, category.ID, *created.CategoryID)
}

func TestImportPolicies_DraftNumberWhenMissing(t *testing.T) {
	service, _, policies, _, _ := newImportFixture()

	rows := []RawRow{
		{
			"Müşteri Adı":     "Ali Veli",
			"Sigorta Şirketi": "Anadolu",
			"Branş":           "Trafik",
		},
		{
			"Müşteri Adı":     "Ayşe Çelik",
			"Sigorta Şirketi": "Anadolu",
			"Branş":           "Konut",
		},
	}

	summary, err := service.ImportPolicies(context.Background(), "user-1", rows)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	require.Len(t, policies.policies, 2)
	first := policies.policies[0].PolicyNumber
	second := policies.policies[1].PolicyNumber
	assert.Regexp(t, `^DRAFT-\d+-\d+$`, first)
	assert.Regexp(t, `^DRAFT-\d+-\d+$`, second)
	// Generated numbers must stay unique within a batch or the insurer's
	// unique policy number constraint rejects every row after the first.
	assert.NotEqual(t, first, second)
}

func TestImportPolicies_AbortsWhenMasterDataUnavailable(t *testing.T) {
	service, _, _, _, _ := newImportFixture()
	service.companies = &fakeCompanyStore{err: errors.New("connection refused")}

	_, err := service.ImportPolicies(context.Background(), "user-1", []RawRow{
		importRow("Ali Veli", "22222222222", "TR-001", "Anadolu", "Trafik"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load companies")
}

func TestImportPolicies_AssetFailureDoesNotAffectCounters(t *testing.T) {
	service, _, _, assets, _ := newImportFixture()
	assets.countErr = errors.New("connection refused")

	summary, err := service.ImportPolicies(context.Background(), "user-1", []RawRow{
		importRow("Ali Veli", "22222222222", "TR-001", "Anadolu", "Trafik"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 0, summary.Errored)
}

func TestImportPolicies_NotifiesOperator(t *testing.T) {
	service, _, _, _, notifier := newImportFixture()

	_, err := service.ImportPolicies(context.Background(), "operator-7", []RawRow{
		importRow("Ali Veli", "22222222222", "TR-001", "Anadolu", "Trafik"),
	})

	require.NoError(t, err)
	assert.Equal(t, "operator-7", notifier.userID)
	require.NotNil(t, notifier.summary)
	assert.Equal(t, 1, notifier.summary.Succeeded)
}
