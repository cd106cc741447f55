package utils_test

import (
	"testing"
	"time"

	"inventory/src/utils"
)

func TestCache(t *testing.T) {
	t.Run("should return the cached string value if valid", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("test value", 1*time.Minute)

		value, found := cache.Get(time.Now())
		if !found || value != "test value" {
			t.Error("expected 'test value', got", value)
		}
	})

	t.Run("should return a zero value if the cache is expired", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("test value", 1*time.Second)
		time.Sleep(2 * time.Second)

		value, found := cache.Get(time.Now())
		if found {
			t.Error("expected cache miss, got", value)
		}
	})

	t.Run("should return a zero value after Clear", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("test value", 1*time.Minute)
		cache.Clear()

		value, found := cache.Get(time.Now())
		if found {
			t.Error("expected cache miss after clear, got", value)
		}
	})

	t.Run("should return the cached struct value if valid", func(t *testing.T) {
		type Stats struct {
			TotalAssets int
		}
		cache := utils.NewCache[Stats]()
		cache.Set(Stats{TotalAssets: 3}, 1*time.Minute)

		value, found := cache.Get(time.Now())
		if !found || value.TotalAssets != 3 {
			t.Errorf("expected 3 assets, got %+v", value)
		}
	})
}
