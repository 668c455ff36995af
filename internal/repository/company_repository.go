package repository

import (
	"fmt"
	"time"

	"agency-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CompanyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetAll() ([]models.Company, error) {
	var companies []models.Company
	query := `SELECT * FROM companies ORDER BY name`

	err := r.db.Select(&companies, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}

	return companies, nil
}

func (r *CompanyRepository) Create(company *models.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	company.CreatedAt = time.Now()

	query := `INSERT INTO companies (id, name, created_at) VALUES (:id, :name, :created_at)`

	_, err := r.db.NamedExec(query, company)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (r *CompanyRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}

	return nil
}
