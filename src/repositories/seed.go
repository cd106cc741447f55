package repositories

import (
	"context"
	"time"

	"inventory/src/models"
)

// Repositories bundles every collection the server owns. Seeded once at
// startup and passed by reference to the controller; nothing else may
// hold its own copy of the data.
type Repositories struct {
	Users       UserRepository
	Divisions   DivisionRepository
	Categories  CategoryRepository
	Components  ComponentRepository
	Assets      AssetRepository
	Maintenance MaintenanceRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Users:       NewUserRepository(),
		Divisions:   NewDivisionRepository(),
		Categories:  NewCategoryRepository(),
		Components:  NewComponentRepository(),
		Assets:      NewAssetRepository(),
		Maintenance: NewMaintenanceRepository(),
	}
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

// Seed loads the demo dataset into every repository.
func Seed(ctx context.Context, repos *Repositories) error {
	users := []models.User{
		{
			ID: "user-1", Name: "John Doe", Email: "john.doe@example.com",
			DivisionID: "division-1", Role: models.RoleAdmin, Phone: "555-1234",
			CreatedAt: ts("2024-01-01T12:00:00Z"), UpdatedAt: ts("2024-01-01T12:00:00Z"),
		},
		{
			ID: "user-2", Name: "Jane Smith", Email: "jane.smith@example.com",
			DivisionID: "division-2", Role: models.RoleUser, Phone: "555-5678",
			CreatedAt: ts("2024-01-02T12:00:00Z"), UpdatedAt: ts("2024-01-02T12:00:00Z"),
		},
		{
			ID: "user-3", Name: "Bob Johnson", Email: "bob.johnson@example.com",
			DivisionID: "division-3", Role: models.RoleTechnician, Phone: "555-9012",
			CreatedAt: ts("2024-01-03T12:00:00Z"), UpdatedAt: ts("2024-01-03T12:00:00Z"),
		},
	}

	divisions := []models.Division{
		{
			ID: "division-1", Name: "IT Department", Description: "Information Technology Department",
			CreatedAt: ts("2024-01-01T10:00:00Z"), UpdatedAt: ts("2024-01-01T10:00:00Z"),
		},
		{
			ID: "division-2", Name: "Finance", Description: "Finance and Accounting Department",
			CreatedAt: ts("2024-01-01T10:05:00Z"), UpdatedAt: ts("2024-01-01T10:05:00Z"),
		},
		{
			ID: "division-3", Name: "HR", Description: "Human Resources Department",
			CreatedAt: ts("2024-01-01T10:10:00Z"), UpdatedAt: ts("2024-01-01T10:10:00Z"),
		},
	}

	categories := []models.Category{
		{ID: "category-1", Name: "Desktop PC", Type: models.CategoryHardware, Description: "Desktop computers",
			CreatedAt: ts("2024-01-01T09:00:00Z"), UpdatedAt: ts("2024-01-01T09:00:00Z")},
		{ID: "category-2", Name: "Laptop", Type: models.CategoryHardware, Description: "Portable computers",
			CreatedAt: ts("2024-01-01T09:05:00Z"), UpdatedAt: ts("2024-01-01T09:05:00Z")},
		{ID: "category-3", Name: "Monitor", Type: models.CategoryHardware, Description: "Display screens",
			CreatedAt: ts("2024-01-01T09:10:00Z"), UpdatedAt: ts("2024-01-01T09:10:00Z")},
		{ID: "category-4", Name: "Printer", Type: models.CategoryHardware, Description: "Printing devices",
			CreatedAt: ts("2024-01-01T09:15:00Z"), UpdatedAt: ts("2024-01-01T09:15:00Z")},
		{ID: "category-5", Name: "Operating System", Type: models.CategorySoftware, Description: "Computer operating systems",
			CreatedAt: ts("2024-01-01T09:20:00Z"), UpdatedAt: ts("2024-01-01T09:20:00Z")},
		{ID: "category-6", Name: "Office Suite", Type: models.CategorySoftware, Description: "Productivity software",
			CreatedAt: ts("2024-01-01T09:25:00Z"), UpdatedAt: ts("2024-01-01T09:25:00Z")},
	}

	components := []models.Component{
		{
			ID: "component-1", Name: "Intel Core i7-11700K", CategoryID: "category-1",
			Model: "i7-11700K", Manufacturer: "Intel", SerialNumber: "CPU123456",
			PurchaseDate: tsp("2023-06-15T00:00:00Z"), WarrantyExpiration: tsp("2026-06-15T00:00:00Z"),
			Specifications: []models.Specification{
				{Key: "Cores", Value: "8"},
				{Key: "Threads", Value: "16"},
				{Key: "Base Clock", Value: "3.6 GHz"},
				{Key: "Turbo Clock", Value: "5.0 GHz"},
			},
			Status:    models.ComponentInUse,
			CreatedAt: ts("2023-06-16T09:00:00Z"), UpdatedAt: ts("2023-06-16T09:00:00Z"),
		},
		{
			ID: "component-2", Name: "NVIDIA GeForce RTX 3080", CategoryID: "category-1",
			Model: "RTX 3080", Manufacturer: "NVIDIA", SerialNumber: "GPU789012",
			PurchaseDate: tsp("2023-06-15T00:00:00Z"), WarrantyExpiration: tsp("2025-06-15T00:00:00Z"),
			Specifications: []models.Specification{
				{Key: "Memory", Value: "10GB GDDR6X"},
				{Key: "CUDA Cores", Value: "8704"},
			},
			Status:    models.ComponentInUse,
			CreatedAt: ts("2023-06-16T09:05:00Z"), UpdatedAt: ts("2023-06-16T09:05:00Z"),
		},
		{
			ID: "component-3", Name: "Samsung 970 EVO Plus 1TB", CategoryID: "category-1",
			Model: "970 EVO Plus", Manufacturer: "Samsung", SerialNumber: "SSD345678",
			PurchaseDate: tsp("2023-06-15T00:00:00Z"), WarrantyExpiration: tsp("2028-06-15T00:00:00Z"),
			Specifications: []models.Specification{
				{Key: "Capacity", Value: "1TB"},
				{Key: "Interface", Value: "NVMe PCIe 3.0 x4"},
				{Key: "Read Speed", Value: "3500 MB/s"},
			},
			Status:    models.ComponentInUse,
			CreatedAt: ts("2023-06-16T09:10:00Z"), UpdatedAt: ts("2023-06-16T09:10:00Z"),
		},
		{
			ID: "component-4", Name: "Corsair Vengeance RGB Pro 32GB", CategoryID: "category-1",
			Model: "Vengeance RGB Pro", Manufacturer: "Corsair", SerialNumber: "RAM901234",
			PurchaseDate: tsp("2023-06-15T00:00:00Z"), WarrantyExpiration: tsp("2028-06-15T00:00:00Z"),
			Specifications: []models.Specification{
				{Key: "Capacity", Value: "32GB (2x16GB)"},
				{Key: "Speed", Value: "3600MHz"},
				{Key: "Type", Value: "DDR4"},
			},
			Status:    models.ComponentInUse,
			CreatedAt: ts("2023-06-16T09:15:00Z"), UpdatedAt: ts("2023-06-16T09:15:00Z"),
		},
		{
			ID: "component-5", Name: `ASUS ProArt Display 27"`, CategoryID: "category-3",
			Model: "PA278QV", Manufacturer: "ASUS", SerialNumber: "MON567890",
			PurchaseDate: tsp("2023-05-10T00:00:00Z"), WarrantyExpiration: tsp("2026-05-10T00:00:00Z"),
			Specifications: []models.Specification{
				{Key: "Size", Value: "27 inches"},
				{Key: "Resolution", Value: "2560x1440"},
				{Key: "Panel Type", Value: "IPS"},
			},
			Status:    models.ComponentInUse,
			CreatedAt: ts("2023-05-11T10:00:00Z"), UpdatedAt: ts("2023-05-11T10:00:00Z"),
		},
	}

	assets := []models.Asset{
		{
			ID: "asset-1", Name: "Development Workstation", AssetTag: "PC-DEV-001",
			CategoryID: "category-1", AssignedToID: "user-1", Status: models.AssetActive,
			PurchaseDate: tsp("2023-06-15T00:00:00Z"), WarrantyExpiration: tsp("2026-06-15T00:00:00Z"),
			Notes:      "High-performance workstation for software development",
			Components: []string{"component-1", "component-2", "component-3", "component-4"},
			CreatedAt:  ts("2023-06-16T09:30:00Z"), UpdatedAt: ts("2023-06-16T09:30:00Z"),
		},
		{
			ID: "asset-2", Name: "Marketing Laptop", AssetTag: "LP-MKT-001",
			CategoryID: "category-2", AssignedToID: "user-2", Status: models.AssetActive,
			PurchaseDate: tsp("2023-04-20T00:00:00Z"), WarrantyExpiration: tsp("2026-04-20T00:00:00Z"),
			Notes:     "Laptop for marketing department",
			CreatedAt: ts("2023-04-21T11:00:00Z"), UpdatedAt: ts("2023-04-21T11:00:00Z"),
		},
		{
			ID: "asset-3", Name: "HR Monitor", AssetTag: "MON-HR-001",
			CategoryID: "category-3", AssignedToID: "user-3", Status: models.AssetActive,
			PurchaseDate: tsp("2023-05-10T00:00:00Z"), WarrantyExpiration: tsp("2026-05-10T00:00:00Z"),
			Components: []string{"component-5"},
			CreatedAt:  ts("2023-05-11T10:30:00Z"), UpdatedAt: ts("2023-05-11T10:30:00Z"),
		},
	}

	maintenance := []models.Maintenance{
		{
			ID: "maintenance-1", AssetID: "asset-1", ReportedByID: "user-1", AssignedToID: "user-3",
			Title:       "System overheating",
			Description: "Workstation is shutting down due to overheating during intensive tasks",
			Status:      models.MaintenanceCompleted, Priority: models.PriorityHigh,
			DateReported:  ts("2024-03-10T14:30:00Z"),
			DateCompleted: tsp("2024-03-11T16:45:00Z"),
			Solution:      "Cleaned dust from CPU and GPU heat sinks, replaced thermal paste",
			Cost:          25.00,
			CreatedAt:     ts("2024-03-10T14:30:00Z"), UpdatedAt: ts("2024-03-11T16:45:00Z"),
		},
		{
			ID: "maintenance-2", AssetID: "asset-2", ReportedByID: "user-2", AssignedToID: "user-3",
			Title:       "Keyboard not working properly",
			Description: "Several keys on the laptop keyboard are not responding",
			Status:      models.MaintenanceInProgress, Priority: models.PriorityMedium,
			DateReported: ts("2024-04-05T09:15:00Z"),
			CreatedAt:    ts("2024-04-05T09:15:00Z"), UpdatedAt: ts("2024-04-05T09:15:00Z"),
		},
		{
			ID: "maintenance-3", AssetID: "asset-3", ReportedByID: "user-3",
			Title:       "Screen flickering",
			Description: "Monitor screen flickers intermittently during use",
			Status:      models.MaintenancePending, Priority: models.PriorityLow,
			DateReported: ts("2024-04-08T11:30:00Z"),
			CreatedAt:    ts("2024-04-08T11:30:00Z"), UpdatedAt: ts("2024-04-08T11:30:00Z"),
		},
	}

	for i := range users {
		if err := repos.Users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	for i := range divisions {
		if err := repos.Divisions.Create(ctx, &divisions[i]); err != nil {
			return err
		}
	}
	for i := range categories {
		if err := repos.Categories.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}
	for i := range components {
		if err := repos.Components.Create(ctx, &components[i]); err != nil {
			return err
		}
	}
	for i := range assets {
		if err := repos.Assets.Create(ctx, &assets[i]); err != nil {
			return err
		}
	}
	for i := range maintenance {
		if err := repos.Maintenance.Create(ctx, &maintenance[i]); err != nil {
			return err
		}
	}
	return nil
}
