package repository

import (
	"fmt"
	"time"

	"agency-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AssetRepository struct {
	db *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(asset *models.CustomerAsset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	asset.CreatedAt = time.Now()

	query := `
		INSERT INTO customer_assets (
			id, customer_id, asset_type, description, details,
			estimated_value, auto_created, created_at
		) VALUES (
			:id, :customer_id, :asset_type, :description, :details,
			:estimated_value, :auto_created, :created_at
		)`

	_, err := r.db.NamedExec(query, asset)
	if err != nil {
		return fmt.Errorf("failed to create customer asset: %w", err)
	}

	return nil
}

func (r *AssetRepository) GetByCustomerID(customerID uuid.UUID) ([]models.CustomerAsset, error) {
	var assets []models.CustomerAsset
	query := `SELECT * FROM customer_assets WHERE customer_id = $1 ORDER BY created_at`

	err := r.db.Select(&assets, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer assets: %w", err)
	}

	return assets, nil
}

func (r *AssetRepository) CountByCustomerAndType(customerID uuid.UUID, assetType models.AssetType) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM customer_assets WHERE customer_id = $1 AND asset_type = $2`

	err := r.db.Get(&count, query, customerID, assetType)
	if err != nil {
		return 0, fmt.Errorf("failed to count customer assets: %w", err)
	}

	return count, nil
}
