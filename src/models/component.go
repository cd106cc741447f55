package models

import "time"

type ComponentStatus string

const (
	ComponentAvailable ComponentStatus = "available"
	ComponentInUse     ComponentStatus = "in-use"
	ComponentDefective ComponentStatus = "defective"
)

// Specification is one free-form (key, value) entry on a component.
// Specifications keep their entry order; there is no schema behind them.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Component struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	CategoryID         string          `json:"categoryId"`
	Model              string          `json:"model,omitempty"`
	Manufacturer       string          `json:"manufacturer,omitempty"`
	SerialNumber       string          `json:"serialNumber,omitempty"`
	PurchaseDate       *time.Time      `json:"purchaseDate,omitempty"`
	WarrantyExpiration *time.Time      `json:"warrantyExpiration,omitempty"`
	Specifications     []Specification `json:"specifications,omitempty"`
	Status             ComponentStatus `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}
