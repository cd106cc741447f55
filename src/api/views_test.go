package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/src/api"
	"inventory/src/barcode"
	"inventory/src/config"
	"inventory/src/models"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	cfg := &config.Config{
		Service:  config.ServiceConfig{Port: "8000", LogLevel: "error"},
		Scanner:  config.ScannerConfig{Camera: "none"},
		Warranty: config.WarrantyConfig{Cron: "0 8 * * *", WindowDays: 30},
	}
	server, err := api.NewServer(cfg)
	require.NoError(t, err)
	return server
}

func doJSON(t *testing.T, server *api.Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestHealthcheck(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/alive", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Im alive!", rec.Body.String())
}

func TestAssetRoutes(t *testing.T) {
	server := newTestServer(t)

	t.Run("list returns the seeded assets", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var assets []models.Asset
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assets))
		assert.Len(t, assets, 3)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets/asset-99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "asset not found")
	})

	t.Run("create rejects an invalid status", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/assets", map[string]interface{}{
			"name": "Bad Status", "assetTag": "BAD-001",
			"categoryId": "category-1", "status": "broken",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("create rejects a malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create and fetch round trip", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/assets", map[string]interface{}{
			"name": "Spare Monitor", "assetTag": "MON-SPARE-001",
			"categoryId": "category-3", "status": "inactive",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.Asset
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, server, http.MethodGet, "/api/assets/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("csv export streams the inventory", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets/export.csv", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "PC-DEV-001")
	})

	t.Run("xlsx export ships a workbook", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets/export.xlsx", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotZero(t, rec.Body.Len())
	})
}

func TestCodeRoutes(t *testing.T) {
	server := newTestServer(t)

	t.Run("code.png serves the raster with a download name", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets/asset-1/code.png?symbology=qr", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "qr-asset-1.png")
	})

	t.Run("default symbology is the linear barcode", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets/asset-1/code.png", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "barcode-asset-1.png")
	})

	t.Run("unknown symbology is a bad request", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets/asset-1/code.png?symbology=pdf417", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("print page embeds the symbol", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assets/asset-1/code/print", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "data:image/png;base64,")
	})
}

func TestScanRoutes(t *testing.T) {
	server := newTestServer(t)

	t.Run("known value resolves to the asset", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/scans", map[string]string{"value": "asset-1"})
		require.Equal(t, http.StatusOK, rec.Code)

		var result barcode.ScanResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.True(t, result.Found)
		assert.Equal(t, "Development Workstation", result.Asset.Name)
		assert.Contains(t, result.Summary, "Type: Desktop PC | Status: active")
	})

	t.Run("unknown value reports a miss", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/scans", map[string]string{"value": "ghost-99"})
		require.Equal(t, http.StatusOK, rec.Code)

		var result barcode.ScanResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.False(t, result.Found)
	})

	t.Run("empty value is rejected", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/scans", map[string]string{"value": ""})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("uploaded frame decodes and resolves", func(t *testing.T) {
		renderer, err := barcode.NewRenderer("")
		require.NoError(t, err)
		symbol, err := barcode.Encode("asset-2", "Marketing Laptop", barcode.SymbologyQR)
		require.NoError(t, err)
		png, err := renderer.RenderPNG(symbol)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/scans/frame", bytes.NewReader(png))
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var result barcode.ScanResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.True(t, result.Found)
		assert.Equal(t, "asset-2", result.Asset.ID)
	})

	t.Run("scan outcomes land in the notification feed", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/notifications", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Asset Found")

		rec = doJSON(t, server, http.MethodGet, "/api/highlights", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "asset-1")
	})
}

func TestScannerRoutes(t *testing.T) {
	server := newTestServer(t)

	t.Run("state starts idle", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/scanner", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "idle")
	})

	t.Run("start without a camera is refused and noticed", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/scanner/start", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = doJSON(t, server, http.MethodGet, "/api/notifications", nil)
		assert.Contains(t, rec.Body.String(), "Camera access error")
	})

	t.Run("stop is always safe", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/scanner/stop", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDashboardRoutes(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 3, stats["totalAssets"])
	assert.EqualValues(t, 6, stats["totalCategories"])
}
