package repositories

import (
	"context"

	"inventory/src/models"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepo struct {
	col *memCollection[models.Category]
}

func NewCategoryRepository() CategoryRepository {
	return &categoryRepo{col: newMemCollection(func(c models.Category) string { return c.ID })}
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	return r.col.List(), nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, ok := r.col.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	r.col.Insert(*category)
	return nil
}

func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	if !r.col.Replace(*category) {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	if !r.col.Remove(id) {
		return ErrNotFound
	}
	return nil
}
