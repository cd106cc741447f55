package repositories

import (
	"context"

	"inventory/src/models"
)

type MaintenanceRepository interface {
	GetAll(ctx context.Context) ([]models.Maintenance, error)
	GetByID(ctx context.Context, id string) (*models.Maintenance, error)
	GetByAssetID(ctx context.Context, assetID string) ([]models.Maintenance, error)
	Create(ctx context.Context, record *models.Maintenance) error
	Update(ctx context.Context, record *models.Maintenance) error
	Delete(ctx context.Context, id string) error
}

type maintenanceRepo struct {
	col *memCollection[models.Maintenance]
}

func NewMaintenanceRepository() MaintenanceRepository {
	return &maintenanceRepo{col: newMemCollection(func(m models.Maintenance) string { return m.ID })}
}

func (r *maintenanceRepo) GetAll(ctx context.Context) ([]models.Maintenance, error) {
	return r.col.List(), nil
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id string) (*models.Maintenance, error) {
	record, ok := r.col.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *maintenanceRepo) GetByAssetID(ctx context.Context, assetID string) ([]models.Maintenance, error) {
	var out []models.Maintenance
	for _, record := range r.col.List() {
		if record.AssetID == assetID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *maintenanceRepo) Create(ctx context.Context, record *models.Maintenance) error {
	r.col.Insert(*record)
	return nil
}

func (r *maintenanceRepo) Update(ctx context.Context, record *models.Maintenance) error {
	if !r.col.Replace(*record) {
		return ErrNotFound
	}
	return nil
}

func (r *maintenanceRepo) Delete(ctx context.Context, id string) error {
	if !r.col.Remove(id) {
		return ErrNotFound
	}
	return nil
}
