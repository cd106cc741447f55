package barcode

import "fmt"

// Encode maps an asset identifier and display label onto a CodeSymbol.
// The payload round-trips byte-for-byte: whatever identifier goes in is
// exactly what a decoder reads back out of the rendered symbol.
func Encode(identifier, label string, symbology Symbology) (*CodeSymbol, error) {
	if identifier == "" {
		return nil, ErrInvalidPayload
	}

	switch symbology {
	case SymbologyBarcode:
		return &CodeSymbol{
			Symbology:  SymbologyBarcode,
			Format:     "CODE128",
			Identifier: identifier,
			Label:      label,
		}, nil
	case SymbologyQR:
		return &CodeSymbol{
			Symbology:       SymbologyQR,
			ErrorCorrection: "M",
			Identifier:      identifier,
			Label:           label,
		}, nil
	default:
		return nil, fmt.Errorf("unknown symbology %q", symbology)
	}
}
