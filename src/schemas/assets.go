package schemas

type CreateAssetRequest struct {
	Name               string   `json:"name" validate:"required"`
	AssetTag           string   `json:"assetTag" validate:"required"`
	CategoryID         string   `json:"categoryId" validate:"required"`
	AssignedToID       string   `json:"assignedToId"`
	LocationID         string   `json:"locationId"`
	Status             string   `json:"status" validate:"required,oneof=active inactive maintenance retired"`
	PurchaseDate       string   `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	WarrantyExpiration string   `json:"warrantyExpiration" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes              string   `json:"notes"`
	Components         []string `json:"components"`
}

type UpdateAssetRequest = CreateAssetRequest
