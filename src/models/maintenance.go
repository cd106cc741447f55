package models

import "time"

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

type MaintenancePriority string

const (
	PriorityLow      MaintenancePriority = "low"
	PriorityMedium   MaintenancePriority = "medium"
	PriorityHigh     MaintenancePriority = "high"
	PriorityCritical MaintenancePriority = "critical"
)

type Maintenance struct {
	ID            string              `json:"id"`
	AssetID       string              `json:"assetId"`
	ReportedByID  string              `json:"reportedById"`
	AssignedToID  string              `json:"assignedToId,omitempty"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        MaintenanceStatus   `json:"status"`
	Priority      MaintenancePriority `json:"priority"`
	DateReported  time.Time           `json:"dateReported"`
	DateCompleted *time.Time          `json:"dateCompleted,omitempty"`
	Solution      string              `json:"solution,omitempty"`
	Cost          float64             `json:"cost,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
