package services

import (
	"testing"
	"time"

	"agency-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fakePolicyListStore struct {
	fakePolicyStore
	items []models.PolicyListItem
	byID  map[uuid.UUID]models.Policy
}

func (s *fakePolicyListStore) GetByID(id uuid.UUID) (*models.Policy, error) {
	policy := s.byID[id]
	return &policy, nil
}

func (s *fakePolicyListStore) List(_ *uuid.UUID, status string, _, _ int) ([]models.PolicyListItem, error) {
	if status == "" {
		return s.items, nil
	}
	var filtered []models.PolicyListItem
	for _, item := range s.items {
		if string(item.Status) == status {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *fakePolicyListStore) Stats() (*models.PolicyStats, error) {
	return &models.PolicyStats{Total: len(s.items)}, nil
}

func (s *fakePolicyListStore) UpdateStatus(uuid.UUID, models.PolicyStatus) error { return nil }
func (s *fakePolicyListStore) Delete(uuid.UUID) error                            { return nil }

func listItem(status models.PolicyStatus, endDate time.Time) models.PolicyListItem {
	return models.PolicyListItem{
		Policy: models.Policy{
			ID:      uuid.New(),
			Status:  status,
			EndDate: endDate,
		},
		CompanyName: "Anadolu Sigorta",
	}
}

// ============================================================================
// TEST SUITE 1: DERIVED STATUS
// ============================================================================

func TestDerivedStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	active := models.Policy{Status: models.PolicyActive, EndDate: now.AddDate(0, 1, 0)}
	assert.Equal(t, models.PolicyActive, active.DerivedStatus(now))

	lapsed := models.Policy{Status: models.PolicyActive, EndDate: now.AddDate(0, -1, 0)}
	assert.Equal(t, models.PolicyExpired, lapsed.DerivedStatus(now))

	cancelled := models.Policy{Status: models.PolicyCancelled, EndDate: now.AddDate(0, -1, 0)}
	assert.Equal(t, models.PolicyCancelled, cancelled.DerivedStatus(now))
}

func TestPolicyServiceList_DerivesExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store := &fakePolicyListStore{items: []models.PolicyListItem{
		listItem(models.PolicyActive, now.AddDate(0, 1, 0)),
		listItem(models.PolicyActive, now.AddDate(0, -1, 0)),
		listItem(models.PolicyPotential, now.AddDate(0, -1, 0)),
	}}
	service := NewPolicyService(store, nil)
	service.now = func() time.Time { return now }

	items, err := service.List(nil, "", 50, 0)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, models.PolicyActive, items[0].Status)
	assert.Equal(t, models.PolicyExpired, items[1].Status)
	assert.Equal(t, models.PolicyPotential, items[2].Status)
}

func TestPolicyServiceList_FilterExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store := &fakePolicyListStore{items: []models.PolicyListItem{
		listItem(models.PolicyActive, now.AddDate(0, 1, 0)),
		listItem(models.PolicyActive, now.AddDate(0, -1, 0)),
	}}
	service := NewPolicyService(store, nil)
	service.now = func() time.Time { return now }

	items, err := service.List(nil, "Expired", 50, 0)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PolicyExpired, items[0].Status)
}

func TestPolicyServiceList_FilterActiveExcludesLapsed(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store := &fakePolicyListStore{items: []models.PolicyListItem{
		listItem(models.PolicyActive, now.AddDate(0, 1, 0)),
		listItem(models.PolicyActive, now.AddDate(0, -1, 0)),
	}}
	service := NewPolicyService(store, nil)
	service.now = func() time.Time { return now }

	items, err := service.List(nil, "Active", 50, 0)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PolicyActive, items[0].Status)
}
