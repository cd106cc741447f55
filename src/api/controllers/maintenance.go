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

func (c *Controller) GetAllMaintenance(ctx context.Context, assetID string) ([]models.Maintenance, error) {
	if assetID != "" {
		return c.Repos.Maintenance.GetByAssetID(ctx, assetID)
	}
	return c.Repos.Maintenance.GetAll(ctx)
}

func (c *Controller) GetMaintenanceByID(ctx context.Context, id string) (*models.Maintenance, error) {
	record, err := c.Repos.Maintenance.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("maintenance record not found")
	}
	return record, err
}

func (c *Controller) maintenanceFromRequest(ctx context.Context, req *schemas.CreateMaintenanceRequest) (*models.Maintenance, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}
	if _, err := c.Repos.Assets.GetByID(ctx, req.AssetID); err != nil {
		return nil, utils.UnprocessableEntity("asset not found: " + req.AssetID)
	}
	if _, err := c.Repos.Users.GetByID(ctx, req.ReportedByID); err != nil {
		return nil, utils.UnprocessableEntity("user not found: " + req.ReportedByID)
	}
	if req.AssignedToID != "" {
		if _, err := c.Repos.Users.GetByID(ctx, req.AssignedToID); err != nil {
			return nil, utils.UnprocessableEntity("user not found: " + req.AssignedToID)
		}
	}

	return &models.Maintenance{
		AssetID:      req.AssetID,
		ReportedByID: req.ReportedByID,
		AssignedToID: req.AssignedToID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       models.MaintenanceStatus(req.Status),
		Priority:     models.MaintenancePriority(req.Priority),
		Solution:     req.Solution,
		Cost:         req.Cost,
	}, nil
}

func (c *Controller) CreateMaintenance(ctx context.Context, req *schemas.CreateMaintenanceRequest) (*models.Maintenance, error) {
	record, err := c.maintenanceFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record.ID = newID("maintenance")
	record.DateReported = now
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.Status == models.MaintenanceCompleted {
		record.DateCompleted = &now
	}

	if err := c.Repos.Maintenance.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Controller) UpdateMaintenance(ctx context.Context, id string, req *schemas.UpdateMaintenanceRequest) (*models.Maintenance, error) {
	existing, err := c.Repos.Maintenance.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("maintenance record not found")
	}
	if err != nil {
		return nil, err
	}

	record, err := c.maintenanceFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record.ID = existing.ID
	record.DateReported = existing.DateReported
	record.DateCompleted = existing.DateCompleted
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = now

	// Closing a ticket stamps the completion time once.
	if record.Status == models.MaintenanceCompleted && existing.Status != models.MaintenanceCompleted {
		record.DateCompleted = &now
	}

	if err := c.Repos.Maintenance.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Controller) DeleteMaintenance(ctx context.Context, id string) error {
	err := c.Repos.Maintenance.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("maintenance record not found")
	}
	return err
}
