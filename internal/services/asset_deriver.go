package services

import (
	"fmt"

	"agency-service/internal/models"

	"github.com/google/uuid"
)

// AssetStore is the persistence surface the deriver needs: count what a
// customer already owns of a type, and create a placeholder.
type AssetStore interface {
	CountByCustomerAndType(customerID uuid.UUID, assetType models.AssetType) (int, error)
	Create(asset *models.CustomerAsset) error
}

// AssetDeriver creates placeholder customer assets implied by imported
// policies: a traffic or casco policy implies a vehicle, a home policy a
// dwelling. It never duplicates; one asset per customer per type.
type AssetDeriver struct {
	assets AssetStore
}

func NewAssetDeriver(assets AssetStore) *AssetDeriver {
	return &AssetDeriver{assets: assets}
}

var assetPlaceholders = map[models.AssetType]string{
	models.AssetVehicle:   "Poliçeden türetilen araç kaydı",
	models.AssetDwelling:  "Poliçeden türetilen konut kaydı",
	models.AssetWorkplace: "Poliçeden türetilen işyeri kaydı",
}

// DeriveFromPolicy ensures the customer has an asset record matching the
// policy's branch. Branches without a physical asset are a no-op.
func (d *AssetDeriver) DeriveFromPolicy(customerID uuid.UUID, branch models.PolicyBranch) error {
	assetType, ok := models.CoarseAssetType(branch)
	if !ok {
		return nil
	}

	count, err := d.assets.CountByCustomerAndType(customerID, assetType)
	if err != nil {
		return fmt.Errorf("failed to check existing assets: %w", err)
	}
	if count > 0 {
		return nil
	}

	asset := &models.CustomerAsset{
		CustomerID:     customerID,
		AssetType:      assetType,
		Description:    assetPlaceholders[assetType],
		EstimatedValue: 0,
		AutoCreated:    true,
	}
	if err := d.assets.Create(asset); err != nil {
		return fmt.Errorf("failed to create derived asset: %w", err)
	}

	return nil
}
