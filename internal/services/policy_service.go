package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agency-service/internal/models"

	"github.com/google/uuid"
)

type nowFunc func() time.Time

func defaultNow() time.Time { return time.Now() }

type policyStore interface {
	Create(policy *models.Policy) error
	GetByID(id uuid.UUID) (*models.Policy, error)
	List(customerID *uuid.UUID, status string, limit, offset int) ([]models.PolicyListItem, error)
	Stats() (*models.PolicyStats, error)
	UpdateStatus(id uuid.UUID, status models.PolicyStatus) error
	Delete(id uuid.UUID) error
}

// StatsCache is the read-through cache in front of the dashboard counters.
// A nil cache disables caching entirely.
type StatsCache interface {
	PolicyStats(ctx context.Context) (*models.PolicyStats, error)
	StorePolicyStats(ctx context.Context, stats *models.PolicyStats) error
	InvalidatePolicyStats(ctx context.Context) error
}

type PolicyService struct {
	policies policyStore
	cache    StatsCache
	now      nowFunc
}

func NewPolicyService(policies policyStore, cache StatsCache) *PolicyService {
	return &PolicyService{
		policies: policies,
		cache:    cache,
		now:      defaultNow,
	}
}

func (s *PolicyService) Create(req *models.CreatePolicyRequest) (*models.Policy, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy request: %w", err)
	}

	policy := &models.Policy{
		PolicyNumber: req.PolicyNumber,
		CustomerID:   req.CustomerID,
		CompanyID:    req.CompanyID,
		ProductID:    req.ProductID,
		CategoryID:   req.CategoryID,
		PolicyType:   req.PolicyType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Premium:      req.Premium,
		Commission:   req.Commission,
		Status:       models.PolicyActive,
		Description:  req.Description,
	}
	if req.Status != "" {
		policy.Status = req.Status
	}

	if err := s.policies.Create(policy); err != nil {
		return nil, err
	}
	s.invalidateStats()

	return policy, nil
}

func (s *PolicyService) Get(id uuid.UUID) (*models.Policy, error) {
	policy, err := s.policies.GetByID(id)
	if err != nil {
		return nil, err
	}
	policy.Status = policy.DerivedStatus(s.now())
	return policy, nil
}

// List returns policy rows with read-time statuses. Filtering by "Expired"
// is handled here since the store never sees that status.
func (s *PolicyService) List(customerID *uuid.UUID, status string, limit, offset int) ([]models.PolicyListItem, error) {
	storedStatus := status
	if status == string(models.PolicyExpired) {
		storedStatus = string(models.PolicyActive)
	}

	items, err := s.policies.List(customerID, storedStatus, limit, offset)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]models.PolicyListItem, 0, len(items))
	for _, item := range items {
		item.Status = item.DerivedStatus(now)
		if status == string(models.PolicyExpired) && item.Status != models.PolicyExpired {
			continue
		}
		if status == string(models.PolicyActive) && item.Status != models.PolicyActive {
			continue
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *PolicyService) Stats(ctx context.Context) (*models.PolicyStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.PolicyStats(ctx); err == nil {
			return stats, nil
		}
	}

	stats, err := s.policies.Stats()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.StorePolicyStats(ctx, stats); err != nil {
			slog.Warn("failed to cache policy stats", "error", err)
		}
	}

	return stats, nil
}

func (s *PolicyService) UpdateStatus(id uuid.UUID, req *models.UpdatePolicyStatusRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid status update: %w", err)
	}
	if err := s.policies.UpdateStatus(id, req.Status); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *PolicyService) Delete(id uuid.UUID) error {
	if err := s.policies.Delete(id); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *PolicyService) invalidateStats() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePolicyStats(context.Background()); err != nil {
		slog.Warn("failed to invalidate policy stats cache", "error", err)
	}
}
