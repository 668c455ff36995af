package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agency-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PolicyRepository struct {
	db *sqlx.DB
}

func NewPolicyRepository(db *sqlx.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

func (r *PolicyRepository) Create(policy *models.Policy) error {
	if policy.ID == uuid.Nil {
		policy.ID = uuid.New()
	}
	policy.CreatedAt = time.Now()
	policy.UpdatedAt = time.Now()

	query := `
		INSERT INTO policies (
			id, policy_number, customer_id, company_id, product_id, category_id,
			policy_type, start_date, end_date, premium, commission, status,
			description, created_at, updated_at
		) VALUES (
			:id, :policy_number, :customer_id, :company_id, :product_id, :category_id,
			:policy_type, :start_date, :end_date, :premium, :commission, :status,
			:description, :created_at, :updated_at
		)`

	_, err := r.db.NamedExec(query, policy)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}

	return nil
}

func (r *PolicyRepository) GetByID(id uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	query := `SELECT * FROM policies WHERE id = $1`

	err := r.db.Get(&policy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	return &policy, nil
}

func (r *PolicyRepository) List(customerID *uuid.UUID, status string, limit, offset int) ([]models.PolicyListItem, error) {
	var policies []models.PolicyListItem
	query := `
		SELECT p.*, c.full_name AS customer_name, co.name AS company_name
		FROM policies p
		LEFT JOIN customers c ON c.id = p.customer_id
		JOIN companies co ON co.id = p.company_id
		WHERE ($1::uuid IS NULL OR p.customer_id = $1)
			AND ($2 = '' OR p.status = $2)
		ORDER BY p.created_at DESC
		LIMIT $3 OFFSET $4`

	err := r.db.Select(&policies, query, customerID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	return policies, nil
}

func (r *PolicyRepository) GetByCustomerID(customerID uuid.UUID) ([]models.Policy, error) {
	var policies []models.Policy
	query := `SELECT * FROM policies WHERE customer_id = $1 ORDER BY start_date DESC`

	err := r.db.Select(&policies, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer policies: %w", err)
	}

	return policies, nil
}

// Stats aggregates dashboard counters in a single round trip. "Expired" is a
// read-time derivation from end_date, never a stored status.
func (r *PolicyRepository) Stats() (*models.PolicyStats, error) {
	var stats models.PolicyStats
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Active' AND end_date >= CURRENT_DATE) AS active,
			COUNT(*) FILTER (WHERE status = 'Active' AND end_date >= CURRENT_DATE
				AND end_date < CURRENT_DATE + INTERVAL '30 days') AS expiring,
			COUNT(*) FILTER (WHERE status = 'Active' AND end_date < CURRENT_DATE) AS expired,
			COUNT(*) FILTER (WHERE status = 'Potential') AS potential
		FROM policies`

	err := r.db.Get(&stats, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get policy stats: %w", err)
	}

	return &stats, nil
}

func (r *PolicyRepository) UpdateStatus(id uuid.UUID, status models.PolicyStatus) error {
	result, err := r.db.Exec(`UPDATE policies SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update policy status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PolicyRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}

	return nil
}
