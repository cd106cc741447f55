package repositories

import (
	"context"

	"inventory/src/models"
)

type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type userRepo struct {
	col *memCollection[models.User]
}

func NewUserRepository() UserRepository {
	return &userRepo{col: newMemCollection(func(u models.User) string { return u.ID })}
}

func (r *userRepo) GetAll(ctx context.Context) ([]models.User, error) {
	return r.col.List(), nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.col.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	r.col.Insert(*user)
	return nil
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	if !r.col.Replace(*user) {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	if !r.col.Remove(id) {
		return ErrNotFound
	}
	return nil
}
