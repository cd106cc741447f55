package barcode_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/src/barcode"
	"inventory/src/notifications"
	"inventory/src/repositories"
)

func seededRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	repos := repositories.NewRepositories()
	require.NoError(t, repositories.Seed(context.Background(), repos))
	return repos
}

func TestResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("known asset id resolves with summary and highlight", func(t *testing.T) {
		repos := seededRepos(t)
		feed := notifications.NewFeed(10)
		resolver := barcode.NewResolver(repos.Assets, repos.Categories, feed, feed)

		result := resolver.Resolve(ctx, "asset-1")

		require.True(t, result.Found)
		require.NotNil(t, result.Asset)
		assert.Equal(t, "Development Workstation", result.Asset.Name)
		assert.Equal(t, "asset-1", result.RawValue)
		assert.Contains(t, result.Summary, "Type: ")
		assert.Contains(t, result.Summary, " | Status: ")

		notices := feed.Notices()
		require.Len(t, notices, 1)
		assert.Equal(t, notifications.KindSuccess, notices[0].Kind)
		assert.Equal(t, "Asset Found: Development Workstation", notices[0].Title)

		highlights := feed.Highlights()
		require.Len(t, highlights, 1)
		assert.Equal(t, "asset-1", highlights[0].AssetID)
		assert.Equal(t, 2*time.Second, highlights[0].Duration)
	})

	t.Run("unknown value reports a miss without a highlight", func(t *testing.T) {
		repos := seededRepos(t)
		feed := notifications.NewFeed(10)
		resolver := barcode.NewResolver(repos.Assets, repos.Categories, feed, feed)

		result := resolver.Resolve(ctx, "ghost-99")

		assert.False(t, result.Found)
		assert.Nil(t, result.Asset)
		assert.Equal(t, "ghost-99", result.RawValue)

		notices := feed.Notices()
		require.Len(t, notices, 1)
		assert.Equal(t, notifications.KindError, notices[0].Kind)
		assert.Equal(t, "Asset not found", notices[0].Title)
		assert.Contains(t, notices[0].Description, "ghost-99")

		assert.Empty(t, feed.Highlights())
	})

	t.Run("category name falls back to the raw id when unknown", func(t *testing.T) {
		repos := seededRepos(t)
		asset, err := repos.Assets.GetByID(ctx, "asset-1")
		require.NoError(t, err)
		asset.CategoryID = "category-missing"
		require.NoError(t, repos.Assets.Update(ctx, asset))

		feed := notifications.NewFeed(10)
		resolver := barcode.NewResolver(repos.Assets, repos.Categories, feed, feed)

		result := resolver.Resolve(ctx, "asset-1")
		require.True(t, result.Found)
		assert.Contains(t, result.Summary, "category-missing")
	})
}
