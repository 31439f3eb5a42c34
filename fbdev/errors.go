package fbdev

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fbdev package.
var (
	// ErrDevice is returned when the device cannot be opened or mapped.
	ErrDevice = errors.New("fbdev: device error")

	// ErrCapabilities is returned when the device geometry differs from the
	// fixed design target.
	ErrCapabilities = errors.New("fbdev: invalid device capabilities")

	// ErrSizeMismatch is returned when a computed row or buffer span exceeds
	// the mapped length.
	ErrSizeMismatch = errors.New("fbdev: buffer size mismatch")

	// ErrUnsupported is returned by Open on platforms without fbdev.
	ErrUnsupported = errors.New("fbdev: frame buffer devices are not supported on this platform")
)

// DeviceError describes a failed open or mmap of a device path.
type DeviceError struct {
	Op   string
	Path string
	Err  error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("fbdev: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDevice.
func (e *DeviceError) Is(target error) bool { return target == ErrDevice }

// CapabilityError reports a geometry field that does not match the design target.
type CapabilityError struct {
	Field    string
	Expected int
	Got      int
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("fbdev: invalid device capabilities: %s mismatch: expected %d, got %d",
		e.Field, e.Expected, e.Got)
}

// Is reports whether target is ErrCapabilities.
func (e *CapabilityError) Is(target error) bool { return target == ErrCapabilities }

// SizeMismatchError reports a span that does not fit the mapped region.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("fbdev: buffer size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is reports whether target is ErrSizeMismatch.
func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }
