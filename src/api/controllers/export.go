package controllers

import (
	"bytes"
	"context"
	"io"
)

func (c *Controller) ExportAssetsCSV(ctx context.Context, w io.Writer) error {
	assets, err := c.Repos.Assets.GetAll(ctx)
	if err != nil {
		return err
	}
	categories, err := c.Repos.Categories.GetAll(ctx)
	if err != nil {
		return err
	}
	users, err := c.Repos.Users.GetAll(ctx)
	if err != nil {
		return err
	}
	return c.Exporter.AssetsCSV(w, assets, categories, users)
}

func (c *Controller) ExportAssetsXLSX(ctx context.Context) (*bytes.Buffer, error) {
	assets, err := c.Repos.Assets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := c.Repos.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := c.Repos.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.Exporter.AssetsWorkbook(assets, categories, users)
}
