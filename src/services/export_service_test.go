package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"inventory/src/repositories"
	"inventory/src/services"
)

func TestExportService(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewRepositories()
	require.NoError(t, repositories.Seed(ctx, repos))

	assets, err := repos.Assets.GetAll(ctx)
	require.NoError(t, err)
	categories, err := repos.Categories.GetAll(ctx)
	require.NoError(t, err)
	users, err := repos.Users.GetAll(ctx)
	require.NoError(t, err)

	svc := services.NewExportService()

	t.Run("CSV resolves category and user names", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.AssetsCSV(&buf, assets, categories, users))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "ID,Name,Asset Tag"))
		assert.Contains(t, lines[1], "Development Workstation")
		assert.Contains(t, lines[1], "Desktop PC")
		assert.Contains(t, lines[1], "John Doe")
	})

	t.Run("workbook carries both sheets", func(t *testing.T) {
		buf, err := svc.AssetsWorkbook(assets, categories, users)
		require.NoError(t, err)
		require.NotNil(t, buf)

		file, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		defer file.Close()

		assert.Contains(t, file.GetSheetList(), "Assets")
		assert.Contains(t, file.GetSheetList(), "Status Summary")

		name, err := file.GetCellValue("Assets", "B2")
		require.NoError(t, err)
		assert.Equal(t, "Development Workstation", name)
	})
}
