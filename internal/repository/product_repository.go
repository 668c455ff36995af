package repository

import (
	"fmt"

	"agency-service/internal/models"

	"github.com/jmoiron/sqlx"
)

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetAllProducts() ([]models.InsuranceProduct, error) {
	var products []models.InsuranceProduct
	query := `SELECT * FROM insurance_products ORDER BY name`

	err := r.db.Select(&products, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) GetAllCategories() ([]models.InsuranceCategory, error) {
	var categories []models.InsuranceCategory
	query := `SELECT * FROM insurance_categories ORDER BY name`

	err := r.db.Select(&categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance categories: %w", err)
	}

	return categories, nil
}
