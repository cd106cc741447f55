package services

import (
	"context"
	"fmt"
	"time"

	"inventory/src/models"
	"inventory/src/notifications"
	"inventory/src/repositories"
)

// WarrantyService periodically checks for assets whose warranty is about
// to lapse and raises an info notification for each one.
type WarrantyService struct {
	assets   repositories.AssetRepository
	notifier notifications.Notifier
	window   time.Duration
}

func NewWarrantyService(assets repositories.AssetRepository, notifier notifications.Notifier, windowDays int) *WarrantyService {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &WarrantyService{
		assets:   assets,
		notifier: notifier,
		window:   time.Duration(windowDays) * 24 * time.Hour,
	}
}

// Sweep reports how many assets were flagged.
func (s *WarrantyService) Sweep(ctx context.Context) (int, error) {
	assets, err := s.assets.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	deadline := now.Add(s.window)

	flagged := 0
	for _, asset := range assets {
		if asset.WarrantyExpiration == nil || asset.Status == models.AssetRetired {
			continue
		}
		expires := *asset.WarrantyExpiration
		if expires.Before(now) || expires.After(deadline) {
			continue
		}
		s.notifier.Notify(
			notifications.KindInfo,
			"Warranty expiring soon: "+asset.Name,
			fmt.Sprintf("Warranty for %s expires on %s", asset.AssetTag, expires.Format("2006-01-02")),
		)
		flagged++
	}
	return flagged, nil
}
