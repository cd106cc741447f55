package notifications_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/src/notifications"
)

func TestFeed(t *testing.T) {
	t.Run("keeps notices in arrival order", func(t *testing.T) {
		feed := notifications.NewFeed(10)
		feed.Notify(notifications.KindSuccess, "first", "one")
		feed.Notify(notifications.KindError, "second", "two")

		notices := feed.Notices()
		require.Len(t, notices, 2)
		assert.Equal(t, "first", notices[0].Title)
		assert.Equal(t, "second", notices[1].Title)
		assert.False(t, notices[0].At.IsZero())
	})

	t.Run("drops the oldest notices past the limit", func(t *testing.T) {
		feed := notifications.NewFeed(2)
		feed.Notify(notifications.KindInfo, "a", "")
		feed.Notify(notifications.KindInfo, "b", "")
		feed.Notify(notifications.KindInfo, "c", "")

		notices := feed.Notices()
		require.Len(t, notices, 2)
		assert.Equal(t, "b", notices[0].Title)
		assert.Equal(t, "c", notices[1].Title)
	})

	t.Run("records highlight requests", func(t *testing.T) {
		feed := notifications.NewFeed(10)
		feed.RequestHighlight("asset-1", 2*time.Second)

		highlights := feed.Highlights()
		require.Len(t, highlights, 1)
		assert.Equal(t, "asset-1", highlights[0].AssetID)
		assert.Equal(t, 2*time.Second, highlights[0].Duration)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		feed := notifications.NewFeed(10)
		feed.Notify(notifications.KindInfo, "a", "")

		notices := feed.Notices()
		notices[0].Title = "mutated"

		assert.Equal(t, "a", feed.Notices()[0].Title)
	})
}

func TestFanout(t *testing.T) {
	first := notifications.NewFeed(10)
	second := notifications.NewFeed(10)

	fanout := notifications.Fanout{first, second}
	fanout.Notify(notifications.KindSuccess, "hello", "world")

	require.Len(t, first.Notices(), 1)
	require.Len(t, second.Notices(), 1)
	assert.Equal(t, "hello", second.Notices()[0].Title)
}
