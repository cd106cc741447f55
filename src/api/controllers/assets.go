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

func (c *Controller) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	return c.Repos.Assets.GetAll(ctx)
}

func (c *Controller) GetAssetByID(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := c.Repos.Assets.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("asset not found")
	}
	return asset, err
}

func (c *Controller) assetFromRequest(ctx context.Context, req *schemas.CreateAssetRequest) (*models.Asset, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}
	if _, err := c.Repos.Categories.GetByID(ctx, req.CategoryID); err != nil {
		return nil, utils.UnprocessableEntity("category not found: " + req.CategoryID)
	}
	if req.AssignedToID != "" {
		if _, err := c.Repos.Users.GetByID(ctx, req.AssignedToID); err != nil {
			return nil, utils.UnprocessableEntity("user not found: " + req.AssignedToID)
		}
	}
	if req.LocationID != "" {
		if _, err := c.Repos.Divisions.GetByID(ctx, req.LocationID); err != nil {
			return nil, utils.UnprocessableEntity("division not found: " + req.LocationID)
		}
	}
	for _, componentID := range req.Components {
		if _, err := c.Repos.Components.GetByID(ctx, componentID); err != nil {
			return nil, utils.UnprocessableEntity("component not found: " + componentID)
		}
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warrantyExpiration, err := parseDate(req.WarrantyExpiration)
	if err != nil {
		return nil, err
	}

	return &models.Asset{
		Name:               req.Name,
		AssetTag:           req.AssetTag,
		CategoryID:         req.CategoryID,
		AssignedToID:       req.AssignedToID,
		LocationID:         req.LocationID,
		Status:             models.AssetStatus(req.Status),
		PurchaseDate:       purchaseDate,
		WarrantyExpiration: warrantyExpiration,
		Notes:              req.Notes,
		Components:         req.Components,
	}, nil
}

func (c *Controller) CreateAsset(ctx context.Context, req *schemas.CreateAssetRequest) (*models.Asset, error) {
	asset, err := c.assetFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := c.Repos.Assets.GetByTag(ctx, req.AssetTag); err == nil {
		return nil, utils.Conflict("asset tag already in use: " + req.AssetTag)
	}

	now := time.Now().UTC()
	asset.ID = newID("asset")
	asset.CreatedAt = now
	asset.UpdatedAt = now

	if err := c.Repos.Assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	c.statsCache.Clear()
	return asset, nil
}

func (c *Controller) UpdateAsset(ctx context.Context, id string, req *schemas.UpdateAssetRequest) (*models.Asset, error) {
	existing, err := c.Repos.Assets.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("asset not found")
	}
	if err != nil {
		return nil, err
	}

	asset, err := c.assetFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if byTag, err := c.Repos.Assets.GetByTag(ctx, req.AssetTag); err == nil && byTag.ID != id {
		return nil, utils.Conflict("asset tag already in use: " + req.AssetTag)
	}

	asset.ID = existing.ID
	asset.CreatedAt = existing.CreatedAt
	asset.UpdatedAt = time.Now().UTC()

	if err := c.Repos.Assets.Update(ctx, asset); err != nil {
		return nil, err
	}
	c.statsCache.Clear()
	return asset, nil
}

func (c *Controller) DeleteAsset(ctx context.Context, id string) error {
	err := c.Repos.Assets.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("asset not found")
	}
	if err == nil {
		c.statsCache.Clear()
	}
	return err
}
