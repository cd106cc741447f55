package models

import "time"

type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetInactive    AssetStatus = "inactive"
	AssetMaintenance AssetStatus = "maintenance"
	AssetRetired     AssetStatus = "retired"
)

// Asset is an inventoried piece of equipment. Its ID is the canonical
// payload encoded into any barcode or QR symbol generated for it.
type Asset struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	AssetTag           string      `json:"assetTag"`
	CategoryID         string      `json:"categoryId"`
	AssignedToID       string      `json:"assignedToId,omitempty"`
	LocationID         string      `json:"locationId,omitempty"`
	Status             AssetStatus `json:"status"`
	PurchaseDate       *time.Time  `json:"purchaseDate,omitempty"`
	WarrantyExpiration *time.Time  `json:"warrantyExpiration,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	Components         []string    `json:"components,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}
