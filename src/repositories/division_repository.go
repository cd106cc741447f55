package repositories

import (
	"context"

	"inventory/src/models"
)

type DivisionRepository interface {
	GetAll(ctx context.Context) ([]models.Division, error)
	GetByID(ctx context.Context, id string) (*models.Division, error)
	Create(ctx context.Context, division *models.Division) error
	Update(ctx context.Context, division *models.Division) error
	Delete(ctx context.Context, id string) error
}

type divisionRepo struct {
	col *memCollection[models.Division]
}

func NewDivisionRepository() DivisionRepository {
	return &divisionRepo{col: newMemCollection(func(d models.Division) string { return d.ID })}
}

func (r *divisionRepo) GetAll(ctx context.Context) ([]models.Division, error) {
	return r.col.List(), nil
}

func (r *divisionRepo) GetByID(ctx context.Context, id string) (*models.Division, error) {
	division, ok := r.col.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &division, nil
}

func (r *divisionRepo) Create(ctx context.Context, division *models.Division) error {
	r.col.Insert(*division)
	return nil
}

func (r *divisionRepo) Update(ctx context.Context, division *models.Division) error {
	if !r.col.Replace(*division) {
		return ErrNotFound
	}
	return nil
}

func (r *divisionRepo) Delete(ctx context.Context, id string) error {
	if !r.col.Remove(id) {
		return ErrNotFound
	}
	return nil
}
