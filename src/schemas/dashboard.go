package schemas

// DashboardStats is the summary block shown on the dashboard landing page.
type DashboardStats struct {
	TotalUsers       int            `json:"totalUsers"`
	TotalDivisions   int            `json:"totalDivisions"`
	TotalCategories  int            `json:"totalCategories"`
	TotalComponents  int            `json:"totalComponents"`
	TotalAssets      int            `json:"totalAssets"`
	TotalMaintenance int            `json:"totalMaintenance"`
	AssetsByStatus   map[string]int `json:"assetsByStatus"`
	TicketsByStatus  map[string]int `json:"ticketsByStatus"`
	ExpiringWarranty int            `json:"expiringWarranty"`
}
