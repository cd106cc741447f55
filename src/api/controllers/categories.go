package controllers

import (
	"context"
	"errors"
	"time"

	"inventory/src/models"
	"inventory/src/repositories"
	"inventory/src/schemas"
	"inventory/src/utils"
)

func (c *Controller) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return c.Repos.Categories.GetAll(ctx)
}

func (c *Controller) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := c.Repos.Categories.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("category not found")
	}
	return category, err
}

func (c *Controller) CreateCategory(ctx context.Context, req *schemas.CreateCategoryRequest) (*models.Category, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:          newID("category"),
		Name:        req.Name,
		Description: req.Description,
		Type:        models.CategoryType(req.Type),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Repos.Categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (c *Controller) UpdateCategory(ctx context.Context, id string, req *schemas.UpdateCategoryRequest) (*models.Category, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}

	category, err := c.Repos.Categories.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("category not found")
	}
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Type = models.CategoryType(req.Type)
	category.UpdatedAt = time.Now().UTC()

	if err := c.Repos.Categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (c *Controller) DeleteCategory(ctx context.Context, id string) error {
	err := c.Repos.Categories.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("category not found")
	}
	return err
}
