package barcode

import "fmt"

type Symbology string

const (
	SymbologyBarcode Symbology = "barcode"
	SymbologyQR      Symbology = "qr"
)

// CodeSymbol describes one renderable code for an asset. Symbols are
// regenerated on demand every time they are displayed, never stored.
// The identifier is the payload verbatim; the label is caption-only and
// is never encoded into the symbol.
type CodeSymbol struct {
	Symbology       Symbology `json:"symbology"`
	Format          string    `json:"format,omitempty"`          // CODE128 for barcode symbols
	ErrorCorrection string    `json:"errorCorrection,omitempty"` // QR only
	Identifier      string    `json:"identifier"`
	Label           string    `json:"label"`
}

// FileName is the deterministic name of the exported raster artifact.
func (s *CodeSymbol) FileName() string {
	return fmt.Sprintf("%s-%s.png", s.Symbology, s.Identifier)
}
