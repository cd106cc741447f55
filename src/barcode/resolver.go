package barcode

import (
	"context"
	"fmt"
	"time"

	"inventory/src/models"
	"inventory/src/notifications"
)

// highlightDuration is how long the matched row stays emphasized.
const highlightDuration = 2 * time.Second

type AssetLookup interface {
	GetByID(ctx context.Context, id string) (*models.Asset, error)
}

type CategoryLookup interface {
	GetByID(ctx context.Context, id string) (*models.Category, error)
}

// Highlighter receives the cosmetic row-highlight request on a hit.
type Highlighter interface {
	RequestHighlight(assetID string, duration time.Duration)
}

// ScanResult is the outcome of resolving a decoded value against the
// asset collection. Ephemeral; it exists only to drive user feedback.
type ScanResult struct {
	Found    bool          `json:"found"`
	RawValue string        `json:"rawValue"`
	Asset    *models.Asset `json:"asset,omitempty"`
	Summary  string        `json:"summary,omitempty"`
}

// Resolver matches decoded values against the asset collection. It only
// reads; the collection is owned and mutated elsewhere.
type Resolver struct {
	assets      AssetLookup
	categories  CategoryLookup
	notifier    notifications.Notifier
	highlighter Highlighter
}

func NewResolver(assets AssetLookup, categories CategoryLookup, notifier notifications.Notifier, highlighter Highlighter) *Resolver {
	return &Resolver{
		assets:      assets,
		categories:  categories,
		notifier:    notifier,
		highlighter: highlighter,
	}
}

// Resolve looks the decoded value up by exact asset id match and emits
// the matching notification either way.
func (r *Resolver) Resolve(ctx context.Context, value string) ScanResult {
	asset, err := r.assets.GetByID(ctx, value)
	if err != nil || asset == nil {
		r.notifier.Notify(notifications.KindError, "Asset not found", "No asset matches this barcode: "+value)
		return ScanResult{RawValue: value}
	}

	categoryName := asset.CategoryID
	if category, err := r.categories.GetByID(ctx, asset.CategoryID); err == nil {
		categoryName = category.Name
	}
	summary := fmt.Sprintf("Type: %s | Status: %s", categoryName, asset.Status)

	r.notifier.Notify(notifications.KindSuccess, "Asset Found: "+asset.Name, summary)
	if r.highlighter != nil {
		r.highlighter.RequestHighlight(asset.ID, highlightDuration)
	}

	return ScanResult{
		Found:    true,
		RawValue: value,
		Asset:    asset,
		Summary:  summary,
	}
}
