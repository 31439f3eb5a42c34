package fb

import (
	"image"

	"github.com/linht/fb/fbdev"
)

// pixelBuffer is a bounds-checked, stride-aware view over a frame buffer
// region. Every write is checked against both the device geometry and the
// byte length of the region; nothing is ever written outside data.
type pixelBuffer struct {
	data   []byte
	width  int
	height int
	stride int
}

// newPixelBuffer wraps data. data must cover stride*height bytes.
func newPixelBuffer(data []byte, width, height, stride int) (pixelBuffer, error) {
	if need := stride * height; len(data) < need {
		return pixelBuffer{}, &fbdev.SizeMismatchError{Expected: need, Actual: len(data)}
	}
	return pixelBuffer{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// offset returns the byte offset of (x, y), or false when the pixel is
// outside the device or its 4 bytes do not fit the region.
func (b *pixelBuffer) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	i := y*b.stride + x*fbdev.BytesPerPixel
	if i < 0 || i+fbdev.BytesPerPixel > len(b.data) {
		return 0, false
	}
	return i, true
}

// setPixel composites c over the pixel at (x, y):
//   - A=255 overwrites all four bytes
//   - 0<A<255 blends each channel as (fg*a + bg*(255-a)) / 255 and sets
//     the destination alpha to 255
//   - A=0 writes nothing
func (b *pixelBuffer) setPixel(x, y int, c Color) error {
	i, ok := b.offset(x, y)
	if !ok {
		return &CoordinateError{X: x, Y: y}
	}

	switch c.A {
	case 255:
		p := b.data[i : i+4 : i+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	case 0:
	default:
		p := b.data[i : i+4 : i+4]
		a := uint32(c.A)
		inv := 255 - a
		p[0] = uint8((uint32(c.R)*a + uint32(p[0])*inv) / 255)
		p[1] = uint8((uint32(c.G)*a + uint32(p[1])*inv) / 255)
		p[2] = uint8((uint32(c.B)*a + uint32(p[2])*inv) / 255)
		p[3] = 255
	}
	return nil
}

// pixel returns the raw bytes at (x, y).
func (b *pixelBuffer) pixel(x, y int) (Color, error) {
	i, ok := b.offset(x, y)
	if !ok {
		return Color{}, &CoordinateError{X: x, Y: y}
	}
	p := b.data[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}, nil
}

// clear fills every visible pixel of every row with the RGB of c and alpha
// 255. Row starts use the stride, so padding bytes are left alone. A row
// whose span runs past the region is a size mismatch; rows before it have
// already been filled.
func (b *pixelBuffer) clear(c Color) error {
	rgba := [4]byte{c.R, c.G, c.B, 255}
	rowBytes := b.width * fbdev.BytesPerPixel

	for y := 0; y < b.height; y++ {
		start := y * b.stride
		end := start + rowBytes
		if start < 0 || end > len(b.data) {
			return &fbdev.SizeMismatchError{Expected: end, Actual: len(b.data)}
		}
		row := b.data[start:end]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], rgba[:])
		}
	}
	return nil
}

// toImage copies the visible area into a tightly packed image.RGBA.
// Pixels are copied as stored; a partially transparent stored alpha is
// reported as is.
func (b *pixelBuffer) toImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	rowBytes := b.width * fbdev.BytesPerPixel
	for y := 0; y < b.height; y++ {
		start := y * b.stride
		end := start + rowBytes
		if start < 0 || end > len(b.data) {
			break
		}
		copy(img.Pix[y*img.Stride:y*img.Stride+rowBytes], b.data[start:end])
	}
	return img
}
