package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/src/barcode"
)

func TestEncode(t *testing.T) {
	t.Run("barcode symbols carry the CODE128 format", func(t *testing.T) {
		symbol, err := barcode.Encode("asset-1", "Development Workstation", barcode.SymbologyBarcode)
		require.NoError(t, err)

		assert.Equal(t, barcode.SymbologyBarcode, symbol.Symbology)
		assert.Equal(t, "CODE128", symbol.Format)
		assert.Empty(t, symbol.ErrorCorrection)
		assert.Equal(t, "asset-1", symbol.Identifier)
		assert.Equal(t, "Development Workstation", symbol.Label)
	})

	t.Run("qr symbols carry medium error correction", func(t *testing.T) {
		symbol, err := barcode.Encode("asset-2", "Office Printer", barcode.SymbologyQR)
		require.NoError(t, err)

		assert.Equal(t, barcode.SymbologyQR, symbol.Symbology)
		assert.Equal(t, "M", symbol.ErrorCorrection)
		assert.Empty(t, symbol.Format)
	})

	t.Run("empty identifier is rejected", func(t *testing.T) {
		_, err := barcode.Encode("", "No ID", barcode.SymbologyBarcode)
		assert.ErrorIs(t, err, barcode.ErrInvalidPayload)
	})

	t.Run("unknown symbology is rejected", func(t *testing.T) {
		_, err := barcode.Encode("asset-1", "Workstation", barcode.Symbology("pdf417"))
		assert.Error(t, err)
	})

	t.Run("file name is deterministic", func(t *testing.T) {
		symbol, err := barcode.Encode("asset-3", "Conference Room Display", barcode.SymbologyQR)
		require.NoError(t, err)
		assert.Equal(t, "qr-asset-3.png", symbol.FileName())
	})
}
