package controllers

import (
	"bytes"
	"context"
	"time"

	"inventory/src/models"
	"inventory/src/schemas"
	"inventory/src/utils/render"
)

const statsCacheTTL = 30 * time.Second

func (c *Controller) GetDashboardStats(ctx context.Context) (*schemas.DashboardStats, error) {
	if cached, ok := c.statsCache.Get(time.Now()); ok {
		return &cached, nil
	}

	users, err := c.Repos.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	divisions, err := c.Repos.Divisions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := c.Repos.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	components, err := c.Repos.Components.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := c.Repos.Assets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := c.Repos.Maintenance.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := schemas.DashboardStats{
		TotalUsers:       len(users),
		TotalDivisions:   len(divisions),
		TotalCategories:  len(categories),
		TotalComponents:  len(components),
		TotalAssets:      len(assets),
		TotalMaintenance: len(tickets),
		AssetsByStatus:   map[string]int{},
		TicketsByStatus:  map[string]int{},
	}

	warrantyDeadline := time.Now().Add(30 * 24 * time.Hour)
	for _, asset := range assets {
		stats.AssetsByStatus[string(asset.Status)]++
		if asset.WarrantyExpiration != nil &&
			asset.WarrantyExpiration.After(time.Now()) &&
			asset.WarrantyExpiration.Before(warrantyDeadline) {
			stats.ExpiringWarranty++
		}
	}
	for _, ticket := range tickets {
		stats.TicketsByStatus[string(ticket.Status)]++
	}

	c.statsCache.Set(stats, statsCacheTTL)
	return &stats, nil
}

func (c *Controller) RenderDashboardReport(ctx context.Context) (string, error) {
	assets, err := c.Repos.Assets.GetAll(ctx)
	if err != nil {
		return "", err
	}
	tickets, err := c.Repos.Maintenance.GetAll(ctx)
	if err != nil {
		return "", err
	}

	assetsByStatus := map[string]float64{}
	for _, asset := range assets {
		assetsByStatus[string(asset.Status)]++
	}
	ticketsByPriority := map[string]float64{}
	for _, ticket := range tickets {
		if ticket.Status == models.MaintenanceCancelled {
			continue
		}
		ticketsByPriority[string(ticket.Priority)]++
	}

	return render.RenderDashboardReport(assetsByStatus, ticketsByPriority)
}

func (c *Controller) RenderDashboardReportPDF(ctx context.Context) (*bytes.Buffer, error) {
	html, err := c.RenderDashboardReport(ctx)
	if err != nil {
		return nil, err
	}
	return render.GeneratePDF([]string{html})
}
