package schemas

type CreateMaintenanceRequest struct {
	AssetID      string  `json:"assetId" validate:"required"`
	ReportedByID string  `json:"reportedById" validate:"required"`
	AssignedToID string  `json:"assignedToId"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Status       string  `json:"status" validate:"required,oneof=pending in-progress completed cancelled"`
	Priority     string  `json:"priority" validate:"required,oneof=low medium high critical"`
	Solution     string  `json:"solution"`
	Cost         float64 `json:"cost" validate:"gte=0"`
}

type UpdateMaintenanceRequest = CreateMaintenanceRequest
