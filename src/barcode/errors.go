package barcode

import "errors"

var (
	// ErrInvalidPayload is returned when a symbol is requested for an
	// empty identifier. Callers are expected to never trigger it.
	ErrInvalidPayload = errors.New("invalid payload: identifier must not be empty")

	// ErrRenderSurfaceUnavailable is returned when the drawing surface
	// for a symbol cannot be produced.
	ErrRenderSurfaceUnavailable = errors.New("render surface unavailable")

	// ErrCameraAccessDenied is returned when the platform refuses the
	// camera stream or no capture device exists.
	ErrCameraAccessDenied = errors.New("camera access denied")
)
