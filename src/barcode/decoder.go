package barcode

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Decoder extracts a symbol value from a single frame. It tries QR,
// CODE128 and EAN-13 in one pass; the first reader that matches wins,
// so QR takes a hypothetical tie. Only one symbol is presented on
// screen at a time, so ties do not occur in practice.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads one frame snapshot. A miss is a normal outcome, not an
// error: any failure inside the readers is folded into (_, false).
func (d *Decoder) Decode(frame image.Image) (value string, ok bool) {
	if frame == nil {
		return "", false
	}

	// The zxing port can panic on degenerate inputs; a bad frame must
	// never escape the decode boundary.
	defer func() {
		if recover() != nil {
			value, ok = "", false
		}
	}()

	bitmap, err := gozxing.NewBinaryBitmapFromImage(frame)
	if err != nil {
		return "", false
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	readers := []gozxing.Reader{
		qrcode.NewQRCodeReader(),
		oned.NewCode128Reader(),
		oned.NewEAN13Reader(),
	}
	for _, reader := range readers {
		if result, err := reader.Decode(bitmap, hints); err == nil {
			return result.GetText(), true
		}
	}
	return "", false
}
