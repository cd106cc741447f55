package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/src/models"
	"inventory/src/repositories"
)

func seededRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	repos := repositories.NewRepositories()
	require.NoError(t, repositories.Seed(context.Background(), repos))
	return repos
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)

	users, err := repos.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	divisions, err := repos.Divisions.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, divisions, 3)

	categories, err := repos.Categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	components, err := repos.Components.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, components, 5)

	assets, err := repos.Assets.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 3)

	tickets, err := repos.Maintenance.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, 3)
}

func TestAssetRepository(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)

	t.Run("GetByID", func(t *testing.T) {
		asset, err := repos.Assets.GetByID(ctx, "asset-1")
		require.NoError(t, err)
		assert.Equal(t, "Development Workstation", asset.Name)
		assert.Equal(t, "PC-DEV-001", asset.AssetTag)
	})

	t.Run("GetByID unknown returns ErrNotFound", func(t *testing.T) {
		_, err := repos.Assets.GetByID(ctx, "asset-99")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("GetByTag", func(t *testing.T) {
		asset, err := repos.Assets.GetByTag(ctx, "LP-MKT-001")
		require.NoError(t, err)
		assert.Equal(t, "asset-2", asset.ID)

		_, err = repos.Assets.GetByTag(ctx, "NO-SUCH-TAG")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("Create and Delete", func(t *testing.T) {
		asset := &models.Asset{
			ID: "asset-4", Name: "Spare Monitor", AssetTag: "MON-SPARE-001",
			CategoryID: "category-3", Status: models.AssetInactive,
			CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		}
		require.NoError(t, repos.Assets.Create(ctx, asset))

		stored, err := repos.Assets.GetByID(ctx, "asset-4")
		require.NoError(t, err)
		assert.Equal(t, "Spare Monitor", stored.Name)

		require.NoError(t, repos.Assets.Delete(ctx, "asset-4"))
		_, err = repos.Assets.GetByID(ctx, "asset-4")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		asset, err := repos.Assets.GetByID(ctx, "asset-3")
		require.NoError(t, err)

		asset.Status = models.AssetMaintenance
		require.NoError(t, repos.Assets.Update(ctx, asset))

		stored, err := repos.Assets.GetByID(ctx, "asset-3")
		require.NoError(t, err)
		assert.Equal(t, models.AssetMaintenance, stored.Status)
	})

	t.Run("Update unknown returns ErrNotFound", func(t *testing.T) {
		err := repos.Assets.Update(ctx, &models.Asset{ID: "asset-99"})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("stored values are copies", func(t *testing.T) {
		asset, err := repos.Assets.GetByID(ctx, "asset-1")
		require.NoError(t, err)
		asset.Name = "mutated locally"

		stored, err := repos.Assets.GetByID(ctx, "asset-1")
		require.NoError(t, err)
		assert.Equal(t, "Development Workstation", stored.Name)
	})
}

func TestComponentRepository(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)

	t.Run("GetByCategoryID", func(t *testing.T) {
		components, err := repos.Components.GetByCategoryID(ctx, "category-1")
		require.NoError(t, err)
		assert.Len(t, components, 4)

		components, err = repos.Components.GetByCategoryID(ctx, "category-6")
		require.NoError(t, err)
		assert.Empty(t, components)
	})

	t.Run("specifications keep their order", func(t *testing.T) {
		component, err := repos.Components.GetByID(ctx, "component-1")
		require.NoError(t, err)
		require.Len(t, component.Specifications, 4)
		assert.Equal(t, "Cores", component.Specifications[0].Key)
		assert.Equal(t, "Turbo Clock", component.Specifications[3].Key)
	})
}

func TestMaintenanceRepository(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)

	t.Run("GetByAssetID", func(t *testing.T) {
		tickets, err := repos.Maintenance.GetByAssetID(ctx, "asset-1")
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "System overheating", tickets[0].Title)
	})

	t.Run("Delete unknown returns ErrNotFound", func(t *testing.T) {
		err := repos.Maintenance.Delete(ctx, "maintenance-99")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
