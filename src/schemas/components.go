package schemas

import "inventory/src/models"

type CreateComponentRequest struct {
	Name               string                 `json:"name" validate:"required"`
	CategoryID         string                 `json:"categoryId" validate:"required"`
	Model              string                 `json:"model"`
	Manufacturer       string                 `json:"manufacturer"`
	SerialNumber       string                 `json:"serialNumber"`
	PurchaseDate       string                 `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	WarrantyExpiration string                 `json:"warrantyExpiration" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Specifications     []models.Specification `json:"specifications"`
	Status             string                 `json:"status" validate:"required,oneof=available in-use defective"`
}

type UpdateComponentRequest = CreateComponentRequest
