package barcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	symbolMargin  = 24
	captionHeight = 20
	barcodeWidth  = 360
	barcodeHeight = 120
	qrSize        = 240
)

// Renderer rasterizes a CodeSymbol together with its caption. The white
// margin around the symbol doubles as the quiet zone scanners need.
type Renderer struct {
	face font.Face
}

// NewRenderer builds a renderer. With an empty fontPath the built-in
// bitmap face is used, so no font asset is required.
func NewRenderer(fontPath string) (*Renderer, error) {
	if fontPath == "" {
		return &Renderer{face: basicfont.Face7x13}, nil
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("could not read font file: %w", err)
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse font file: %w", err)
	}
	return &Renderer{face: truetype.NewFace(ft, &truetype.Options{Size: 14})}, nil
}

func (r *Renderer) symbolImage(symbol *CodeSymbol) (image.Image, error) {
	switch symbol.Symbology {
	case SymbologyBarcode:
		code, err := code128.Encode(symbol.Identifier)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		scaled, err := barcode.Scale(code, barcodeWidth, barcodeHeight)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderSurfaceUnavailable, err)
		}
		return scaled, nil
	case SymbologyQR:
		code, err := qr.Encode(symbol.Identifier, qr.M, qr.Auto)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		scaled, err := barcode.Scale(code, qrSize, qrSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderSurfaceUnavailable, err)
		}
		return scaled, nil
	default:
		return nil, fmt.Errorf("unknown symbology %q", symbol.Symbology)
	}
}

// RenderImage draws the symbol with the label above it and the raw
// payload value below it, on a white surface.
func (r *Renderer) RenderImage(symbol *CodeSymbol) (image.Image, error) {
	if symbol == nil || symbol.Identifier == "" {
		return nil, ErrInvalidPayload
	}

	symbolImg, err := r.symbolImage(symbol)
	if err != nil {
		return nil, err
	}

	bounds := symbolImg.Bounds()
	width := bounds.Dx() + 2*symbolMargin
	height := bounds.Dy() + 2*symbolMargin + 2*captionHeight

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	dc.DrawImage(symbolImg, symbolMargin, symbolMargin+captionHeight)

	dc.SetFontFace(r.face)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(symbol.Label, float64(width)/2, symbolMargin/2+captionHeight/2, 0.5, 0.5)
	dc.DrawStringAnchored(symbol.Identifier, float64(width)/2, float64(height)-symbolMargin/2-captionHeight/2, 0.5, 0.5)

	return dc.Image(), nil
}

// RenderPNG encodes the captioned symbol raster as PNG bytes.
func (r *Renderer) RenderPNG(symbol *CodeSymbol) ([]byte, error) {
	img, err := r.RenderImage(symbol)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(img)
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderSurfaceUnavailable, err)
	}
	return buf.Bytes(), nil
}
