package fb

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fb package.
//
// Device, capability and size errors come from package fbdev
// (fbdev.ErrDevice, fbdev.ErrCapabilities, fbdev.ErrSizeMismatch); font
// errors from package text (text.ErrFontLoad, text.ErrFontNotLoaded).
var (
	// ErrInvalidCoordinate is returned when a pixel lies outside the device.
	ErrInvalidCoordinate = errors.New("fb: invalid coordinate")

	// ErrClosed is returned by every Engine method after Close.
	ErrClosed = errors.New("fb: engine closed")
)

// CoordinateError reports an out-of-range pixel coordinate.
type CoordinateError struct {
	X, Y int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("fb: invalid coordinate: (%d, %d)", e.X, e.Y)
}

// Is reports whether target is ErrInvalidCoordinate.
func (e *CoordinateError) Is(target error) bool { return target == ErrInvalidCoordinate }
