package fbdev

import "fmt"

// Design target of the LinHT front panel.
const (
	Width         = 160
	Height        = 128
	BitsPerPixel  = 32
	BytesPerPixel = BitsPerPixel / 8

	// Stride is the tightly packed row pitch in bytes.
	Stride = Width * BytesPerPixel

	// Size is the tightly packed buffer length in bytes.
	Size = Stride * Height
)

// Info describes the geometry of a frame buffer.
type Info struct {
	Width        int
	Height       int
	BitsPerPixel int

	// LineLength is the row pitch in bytes. It may exceed Width*4 when the
	// hardware pads rows.
	LineLength int

	// BufferSize is the total mapped length in bytes.
	BufferSize int
}

// Fallback returns the built-in profile used when the device cannot be
// queried: 160x128, 32 bpp, tightly packed.
func Fallback() Info {
	return Info{
		Width:        Width,
		Height:       Height,
		BitsPerPixel: BitsPerPixel,
		LineLength:   Stride,
		BufferSize:   Size,
	}
}

// Validate checks the geometry against the design target.
// It returns a *CapabilityError or a *SizeMismatchError.
func (i Info) Validate() error {
	if i.Width != Width {
		return &CapabilityError{Field: "width", Expected: Width, Got: i.Width}
	}
	if i.Height != Height {
		return &CapabilityError{Field: "height", Expected: Height, Got: i.Height}
	}
	if i.BitsPerPixel != BitsPerPixel {
		return &CapabilityError{Field: "bits per pixel", Expected: BitsPerPixel, Got: i.BitsPerPixel}
	}
	if need := i.LineLength * i.Height; i.BufferSize < need {
		return &SizeMismatchError{Expected: need, Actual: i.BufferSize}
	}
	return nil
}

// String implements fmt.Stringer.
func (i Info) String() string {
	return fmt.Sprintf("%dx%d %dbpp stride=%d size=%d",
		i.Width, i.Height, i.BitsPerPixel, i.LineLength, i.BufferSize)
}
