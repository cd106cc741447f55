package controllers

import (
	"context"
	"image"

	"inventory/src/barcode"
	"inventory/src/notifications"
)

// ResolveScan matches a decoded value against the asset collection and
// emits the hit or miss notification.
func (c *Controller) ResolveScan(ctx context.Context, value string) barcode.ScanResult {
	return c.Resolver.Resolve(ctx, value)
}

// DecodeFrame runs one decode attempt over a captured frame. A miss is
// not an error.
func (c *Controller) DecodeFrame(ctx context.Context, frame image.Image) (string, bool) {
	return c.Decoder.Decode(frame)
}

func (c *Controller) OpenScanner(ctx context.Context) error {
	return c.Scanner.Open(ctx)
}

func (c *Controller) CloseScanner() {
	c.Scanner.Close()
}

func (c *Controller) ScannerState() barcode.SessionState {
	return c.Scanner.State()
}

func (c *Controller) GetNotices() []notifications.Notice {
	return c.Feed.Notices()
}

func (c *Controller) GetHighlights() []notifications.Highlight {
	return c.Feed.Highlights()
}
