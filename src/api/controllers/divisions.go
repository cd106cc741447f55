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

func (c *Controller) GetAllDivisions(ctx context.Context) ([]models.Division, error) {
	return c.Repos.Divisions.GetAll(ctx)
}

func (c *Controller) GetDivisionByID(ctx context.Context, id string) (*models.Division, error) {
	division, err := c.Repos.Divisions.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("division not found")
	}
	return division, err
}

func (c *Controller) CreateDivision(ctx context.Context, req *schemas.CreateDivisionRequest) (*models.Division, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}

	now := time.Now().UTC()
	division := &models.Division{
		ID:          newID("division"),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Repos.Divisions.Create(ctx, division); err != nil {
		return nil, err
	}
	return division, nil
}

func (c *Controller) UpdateDivision(ctx context.Context, id string, req *schemas.UpdateDivisionRequest) (*models.Division, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}

	division, err := c.Repos.Divisions.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("division not found")
	}
	if err != nil {
		return nil, err
	}

	division.Name = req.Name
	division.Description = req.Description
	division.UpdatedAt = time.Now().UTC()

	if err := c.Repos.Divisions.Update(ctx, division); err != nil {
		return nil, err
	}
	return division, nil
}

func (c *Controller) DeleteDivision(ctx context.Context, id string) error {
	err := c.Repos.Divisions.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("division not found")
	}
	return err
}
