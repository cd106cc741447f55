package controllers

import (
	"bytes"
	"context"

	"inventory/src/barcode"
	"inventory/src/utils/render"
)

func (c *Controller) assetSymbol(ctx context.Context, assetID string, symbology barcode.Symbology) (*barcode.CodeSymbol, error) {
	asset, err := c.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return barcode.Encode(asset.ID, asset.Name, symbology)
}

// RenderAssetCode returns the deterministic file name and the PNG bytes
// of the captioned symbol for one asset.
func (c *Controller) RenderAssetCode(ctx context.Context, assetID string, symbology barcode.Symbology) (string, []byte, error) {
	symbol, err := c.assetSymbol(ctx, assetID, symbology)
	if err != nil {
		return "", nil, err
	}
	data, err := c.Renderer.RenderPNG(symbol)
	if err != nil {
		return "", nil, err
	}
	return symbol.FileName(), data, nil
}

// RenderAssetCodePrint returns the print-formatted HTML page. The symbol
// raster is complete before the page is assembled, so the client can
// invoke the print dialog as soon as the document loads.
func (c *Controller) RenderAssetCodePrint(ctx context.Context, assetID string, symbology barcode.Symbology) (string, error) {
	symbol, err := c.assetSymbol(ctx, assetID, symbology)
	if err != nil {
		return "", err
	}
	data, err := c.Renderer.RenderPNG(symbol)
	if err != nil {
		return "", err
	}
	return render.RenderPrintDocument(symbol.Label, symbol.Identifier, data)
}

func (c *Controller) RenderAssetCodePrintPDF(ctx context.Context, assetID string, symbology barcode.Symbology) (*bytes.Buffer, error) {
	html, err := c.RenderAssetCodePrint(ctx, assetID, symbology)
	if err != nil {
		return nil, err
	}
	return render.GeneratePDF([]string{html})
}
