package controllers

import (
	"bytes"
	"context"
	"image"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"inventory/src/barcode"
	"inventory/src/models"
	"inventory/src/notifications"
	"inventory/src/repositories"
	"inventory/src/schemas"
	"inventory/src/services"
	"inventory/src/utils"
)

type IController interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req *schemas.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *schemas.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	GetAllDivisions(ctx context.Context) ([]models.Division, error)
	GetDivisionByID(ctx context.Context, id string) (*models.Division, error)
	CreateDivision(ctx context.Context, req *schemas.CreateDivisionRequest) (*models.Division, error)
	UpdateDivision(ctx context.Context, id string, req *schemas.UpdateDivisionRequest) (*models.Division, error)
	DeleteDivision(ctx context.Context, id string) error

	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, req *schemas.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *schemas.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	GetAllComponents(ctx context.Context, categoryID string) ([]models.Component, error)
	GetComponentByID(ctx context.Context, id string) (*models.Component, error)
	CreateComponent(ctx context.Context, req *schemas.CreateComponentRequest) (*models.Component, error)
	UpdateComponent(ctx context.Context, id string, req *schemas.UpdateComponentRequest) (*models.Component, error)
	DeleteComponent(ctx context.Context, id string) error

	GetAllAssets(ctx context.Context) ([]models.Asset, error)
	GetAssetByID(ctx context.Context, id string) (*models.Asset, error)
	CreateAsset(ctx context.Context, req *schemas.CreateAssetRequest) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id string, req *schemas.UpdateAssetRequest) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error

	GetAllMaintenance(ctx context.Context, assetID string) ([]models.Maintenance, error)
	GetMaintenanceByID(ctx context.Context, id string) (*models.Maintenance, error)
	CreateMaintenance(ctx context.Context, req *schemas.CreateMaintenanceRequest) (*models.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id string, req *schemas.UpdateMaintenanceRequest) (*models.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id string) error

	RenderAssetCode(ctx context.Context, assetID string, symbology barcode.Symbology) (string, []byte, error)
	RenderAssetCodePrint(ctx context.Context, assetID string, symbology barcode.Symbology) (string, error)
	RenderAssetCodePrintPDF(ctx context.Context, assetID string, symbology barcode.Symbology) (*bytes.Buffer, error)

	ResolveScan(ctx context.Context, value string) barcode.ScanResult
	DecodeFrame(ctx context.Context, frame image.Image) (string, bool)
	OpenScanner(ctx context.Context) error
	CloseScanner()
	ScannerState() barcode.SessionState

	GetDashboardStats(ctx context.Context) (*schemas.DashboardStats, error)
	RenderDashboardReport(ctx context.Context) (string, error)
	RenderDashboardReportPDF(ctx context.Context) (*bytes.Buffer, error)

	ExportAssetsCSV(ctx context.Context, w io.Writer) error
	ExportAssetsXLSX(ctx context.Context) (*bytes.Buffer, error)

	GetNotices() []notifications.Notice
	GetHighlights() []notifications.Highlight
}

type Controller struct {
	Repos    *repositories.Repositories
	Renderer *barcode.Renderer
	Decoder  *barcode.Decoder
	Resolver *barcode.Resolver
	Scanner  *services.ScannerService
	Exporter *services.ExportService
	Feed     *notifications.Feed
	Notifier notifications.Notifier

	validate   *validator.Validate
	statsCache *utils.Cache[schemas.DashboardStats]
}

func NewController(
	repos *repositories.Repositories,
	renderer *barcode.Renderer,
	decoder *barcode.Decoder,
	resolver *barcode.Resolver,
	scanner *services.ScannerService,
	exporter *services.ExportService,
	feed *notifications.Feed,
	notifier notifications.Notifier,
) *Controller {
	return &Controller{
		Repos:      repos,
		Renderer:   renderer,
		Decoder:    decoder,
		Resolver:   resolver,
		Scanner:    scanner,
		Exporter:   exporter,
		Feed:       feed,
		Notifier:   notifier,
		validate:   validator.New(),
		statsCache: utils.NewCache[schemas.DashboardStats](),
	}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// parseDate turns an optional RFC3339 string into a *time.Time.
// Validation already checked the format, so a parse failure here means a
// malformed request slipped through and is reported as such.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, utils.UnprocessableEntity("invalid date: " + value)
	}
	return &t, nil
}
