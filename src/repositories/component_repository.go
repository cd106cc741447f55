package repositories

import (
	"context"

	"inventory/src/models"
)

type ComponentRepository interface {
	GetAll(ctx context.Context) ([]models.Component, error)
	GetByID(ctx context.Context, id string) (*models.Component, error)
	GetByCategoryID(ctx context.Context, categoryID string) ([]models.Component, error)
	Create(ctx context.Context, component *models.Component) error
	Update(ctx context.Context, component *models.Component) error
	Delete(ctx context.Context, id string) error
}

type componentRepo struct {
	col *memCollection[models.Component]
}

func NewComponentRepository() ComponentRepository {
	return &componentRepo{col: newMemCollection(func(c models.Component) string { return c.ID })}
}

func (r *componentRepo) GetAll(ctx context.Context) ([]models.Component, error) {
	return r.col.List(), nil
}

func (r *componentRepo) GetByID(ctx context.Context, id string) (*models.Component, error) {
	component, ok := r.col.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &component, nil
}

func (r *componentRepo) GetByCategoryID(ctx context.Context, categoryID string) ([]models.Component, error) {
	var out []models.Component
	for _, component := range r.col.List() {
		if component.CategoryID == categoryID {
			out = append(out, component)
		}
	}
	return out, nil
}

func (r *componentRepo) Create(ctx context.Context, component *models.Component) error {
	r.col.Insert(*component)
	return nil
}

func (r *componentRepo) Update(ctx context.Context, component *models.Component) error {
	if !r.col.Replace(*component) {
		return ErrNotFound
	}
	return nil
}

func (r *componentRepo) Delete(ctx context.Context, id string) error {
	if !r.col.Remove(id) {
		return ErrNotFound
	}
	return nil
}
