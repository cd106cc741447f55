package services

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"inventory/src/models"
	"inventory/src/utils"
)

var assetExportHeader = []string{
	"ID", "Name", "Asset Tag", "Category", "Assigned To", "Status",
	"Purchase Date", "Warranty Expiration", "Notes",
}

// ExportService produces downloadable inventory reports.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func assetRows(assets []models.Asset, categories []models.Category, users []models.User) [][]string {
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{
			a.ID,
			a.Name,
			a.AssetTag,
			categoryNames[a.CategoryID],
			userNames[a.AssignedToID],
			string(a.Status),
			formatDate(a.PurchaseDate),
			formatDate(a.WarrantyExpiration),
			a.Notes,
		})
	}
	return rows
}

// AssetsCSV streams the asset inventory as CSV.
func (s *ExportService) AssetsCSV(w io.Writer, assets []models.Asset, categories []models.Category, users []models.User) error {
	return utils.WriteCSV(w, assetExportHeader, assetRows(assets, categories, users))
}

// AssetsWorkbook builds an xlsx workbook with the asset inventory and a
// status-count summary sheet carrying a bar chart.
func (s *ExportService) AssetsWorkbook(assets []models.Asset, categories []models.Category, users []models.User) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Assets"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, title := range assetExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	for rowIdx, row := range assetRows(assets, categories, users) {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := addStatusSummary(file, assets); err != nil {
		return nil, err
	}

	return file.WriteToBuffer()
}

// addStatusSummary adds a sheet with per-status counts and a bar chart
// over them.
func addStatusSummary(file *excelize.File, assets []models.Asset) error {
	const sheet = "Status Summary"
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}

	counts := map[models.AssetStatus]int{}
	for _, a := range assets {
		counts[a.Status]++
	}

	statuses := []models.AssetStatus{
		models.AssetActive, models.AssetInactive, models.AssetMaintenance, models.AssetRetired,
	}

	if err := file.SetCellValue(sheet, "A1", "Status"); err != nil {
		return err
	}
	if err := file.SetCellValue(sheet, "B1", "Count"); err != nil {
		return err
	}
	for i, status := range statuses {
		row := i + 2
		if err := file.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(status)); err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, fmt.Sprintf("B%d", row), counts[status]); err != nil {
			return err
		}
	}

	chart := excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$1", sheet),
				Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, len(statuses)+1),
				Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, len(statuses)+1),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: "Assets by Status"},
		},
		PlotArea: excelize.ChartPlotArea{
			ShowVal: true,
		},
	}
	return file.AddChart(sheet, "D2", &chart)
}
