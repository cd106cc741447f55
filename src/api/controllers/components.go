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

func (c *Controller) GetAllComponents(ctx context.Context, categoryID string) ([]models.Component, error) {
	if categoryID != "" {
		return c.Repos.Components.GetByCategoryID(ctx, categoryID)
	}
	return c.Repos.Components.GetAll(ctx)
}

func (c *Controller) GetComponentByID(ctx context.Context, id string) (*models.Component, error) {
	component, err := c.Repos.Components.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("component not found")
	}
	return component, err
}

func (c *Controller) componentFromRequest(ctx context.Context, req *schemas.CreateComponentRequest) (*models.Component, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}
	if _, err := c.Repos.Categories.GetByID(ctx, req.CategoryID); err != nil {
		return nil, utils.UnprocessableEntity("category not found: " + req.CategoryID)
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warrantyExpiration, err := parseDate(req.WarrantyExpiration)
	if err != nil {
		return nil, err
	}

	return &models.Component{
		Name:               req.Name,
		CategoryID:         req.CategoryID,
		Model:              req.Model,
		Manufacturer:       req.Manufacturer,
		SerialNumber:       req.SerialNumber,
		PurchaseDate:       purchaseDate,
		WarrantyExpiration: warrantyExpiration,
		Specifications:     req.Specifications,
		Status:             models.ComponentStatus(req.Status),
	}, nil
}

func (c *Controller) CreateComponent(ctx context.Context, req *schemas.CreateComponentRequest) (*models.Component, error) {
	component, err := c.componentFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	component.ID = newID("component")
	component.CreatedAt = now
	component.UpdatedAt = now

	if err := c.Repos.Components.Create(ctx, component); err != nil {
		return nil, err
	}
	return component, nil
}

func (c *Controller) UpdateComponent(ctx context.Context, id string, req *schemas.UpdateComponentRequest) (*models.Component, error) {
	existing, err := c.Repos.Components.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("component not found")
	}
	if err != nil {
		return nil, err
	}

	component, err := c.componentFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	component.ID = existing.ID
	component.CreatedAt = existing.CreatedAt
	component.UpdatedAt = time.Now().UTC()

	if err := c.Repos.Components.Update(ctx, component); err != nil {
		return nil, err
	}
	return component, nil
}

func (c *Controller) DeleteComponent(ctx context.Context, id string) error {
	err := c.Repos.Components.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("component not found")
	}
	return err
}
