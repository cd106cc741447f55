package repositories

import (
	"context"

	"inventory/src/models"
)

type AssetRepository interface {
	GetAll(ctx context.Context) ([]models.Asset, error)
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	GetByTag(ctx context.Context, tag string) (*models.Asset, error)
	Create(ctx context.Context, asset *models.Asset) error
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id string) error
}

type assetRepo struct {
	col *memCollection[models.Asset]
}

func NewAssetRepository() AssetRepository {
	return &assetRepo{col: newMemCollection(func(a models.Asset) string { return a.ID })}
}

func (r *assetRepo) GetAll(ctx context.Context) ([]models.Asset, error) {
	return r.col.List(), nil
}

func (r *assetRepo) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	asset, ok := r.col.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &asset, nil
}

func (r *assetRepo) GetByTag(ctx context.Context, tag string) (*models.Asset, error) {
	asset, ok := r.col.Find(func(a models.Asset) bool { return a.AssetTag == tag })
	if !ok {
		return nil, ErrNotFound
	}
	return &asset, nil
}

func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	r.col.Insert(*asset)
	return nil
}

func (r *assetRepo) Update(ctx context.Context, asset *models.Asset) error {
	if !r.col.Replace(*asset) {
		return ErrNotFound
	}
	return nil
}

func (r *assetRepo) Delete(ctx context.Context, id string) error {
	if !r.col.Remove(id) {
		return ErrNotFound
	}
	return nil
}
