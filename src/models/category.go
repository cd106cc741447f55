package models

import "time"

type CategoryType string

const (
	CategoryHardware CategoryType = "hardware"
	CategorySoftware CategoryType = "software"
)

type Category struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Type        CategoryType `json:"type"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
