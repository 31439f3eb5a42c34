package fb

import (
	"bytes"
	"errors"
	"testing"

	"github.com/linht/fb/fbdev"
)

func newTestBuffer(t *testing.T, stride int) pixelBuffer {
	t.Helper()
	b, err := newPixelBuffer(make([]byte, stride*fbdev.Height), fbdev.Width, fbdev.Height, stride)
	if err != nil {
		t.Fatalf("newPixelBuffer() = %v", err)
	}
	return b
}

func TestNewPixelBufferShortRegion(t *testing.T) {
	_, err := newPixelBuffer(make([]byte, 100), fbdev.Width, fbdev.Height, fbdev.Stride)
	if !errors.Is(err, fbdev.ErrSizeMismatch) {
		t.Fatalf("newPixelBuffer() = %v, want ErrSizeMismatch", err)
	}
}

func TestSetPixelOpaqueReadBack(t *testing.T) {
	b := newTestBuffer(t, fbdev.Stride)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := Color{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255}
			if err := b.setPixel(x, y, c); err != nil {
				t.Fatalf("setPixel(%d, %d) = %v", x, y, err)
			}
		}
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			want := Color{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255}
			got, err := b.pixel(x, y)
			if err != nil || got != want {
				t.Fatalf("pixel(%d, %d) = %v, %v, want %v", x, y, got, err, want)
			}
		}
	}
}

func TestSetPixelBlend(t *testing.T) {
	bg := Color{R: 100, G: 50, B: 200, A: 255}
	tests := []struct {
		name string
		fg   Color
		want Color
	}{
		{"half", Color{200, 100, 0, 128}, Color{150, 75, 99, 255}},
		{"faint", Color{255, 255, 255, 1}, Color{100, 50, 200, 255}},
		{"almost opaque", Color{0, 0, 0, 254}, Color{0, 0, 0, 255}},
		{"same color", Color{100, 50, 200, 77}, Color{100, 50, 200, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(t, fbdev.Stride)
			if err := b.setPixel(3, 4, bg); err != nil {
				t.Fatal(err)
			}
			if err := b.setPixel(3, 4, tt.fg); err != nil {
				t.Fatal(err)
			}
			got, _ := b.pixel(3, 4)
			if got != tt.want {
				t.Errorf("blend(%v over %v) = %v, want %v", tt.fg, bg, got, tt.want)
			}
		})
	}
}

func TestSetPixelBlendFormula(t *testing.T) {
	b := newTestBuffer(t, fbdev.Stride)
	bg := Color{R: 13, G: 180, B: 255, A: 40}
	for a := 1; a < 255; a++ {
		if err := b.setPixel(0, 0, bg.WithAlpha(255)); err != nil {
			t.Fatal(err)
		}
		// Destination alpha is not part of the blend.
		b.data[3] = bg.A

		fg := Color{R: 250, G: 7, B: 128, A: uint8(a)}
		if err := b.setPixel(0, 0, fg); err != nil {
			t.Fatal(err)
		}
		inv := 255 - a
		want := Color{
			R: uint8((250*a + 13*inv) / 255),
			G: uint8((7*a + 180*inv) / 255),
			B: uint8((128*a + 255*inv) / 255),
			A: 255,
		}
		if got, _ := b.pixel(0, 0); got != want {
			t.Fatalf("alpha %d: got %v, want %v", a, got, want)
		}
	}
}

func TestSetPixelTransparentIsNoop(t *testing.T) {
	b := newTestBuffer(t, fbdev.Stride)
	for _, prior := range []Color{Black, White, {1, 2, 3, 4}, {0, 0, 0, 0}} {
		if err := b.setPixel(7, 7, prior.WithAlpha(255)); err != nil {
			t.Fatal(err)
		}
		copy(b.data[7*b.stride+7*4:], []byte{prior.R, prior.G, prior.B, prior.A})
		if err := b.setPixel(7, 7, Color{255, 0, 255, 0}); err != nil {
			t.Fatal(err)
		}
		if got, _ := b.pixel(7, 7); got != prior {
			t.Errorf("alpha 0 over %v changed pixel to %v", prior, got)
		}
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	b := newTestBuffer(t, fbdev.Stride)
	if err := b.clear(RGB(9, 9, 9)); err != nil {
		t.Fatal(err)
	}
	before := append([]byte(nil), b.data...)

	oob := []struct{ x, y int }{
		{160, 0}, {0, 128}, {160, 128}, {-1, 0}, {0, -1},
		{1000, 1000}, {-100, -100}, {159, 128}, {160, 127},
	}
	for _, c := range oob {
		err := b.setPixel(c.x, c.y, Green)
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("setPixel(%d, %d) = %v, want ErrInvalidCoordinate", c.x, c.y, err)
		}
		var ce *CoordinateError
		if !errors.As(err, &ce) || ce.X != c.x || ce.Y != c.y {
			t.Errorf("setPixel(%d, %d) error = %#v", c.x, c.y, err)
		}
		if _, err := b.pixel(c.x, c.y); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("pixel(%d, %d) = %v, want ErrInvalidCoordinate", c.x, c.y, err)
		}
	}
	if !bytes.Equal(before, b.data) {
		t.Error("out-of-range setPixel modified the buffer")
	}
}

func TestSetPixelOffsetBeyondRegion(t *testing.T) {
	// Geometry claims more rows than the region holds.
	b := pixelBuffer{data: make([]byte, fbdev.Stride*2), width: fbdev.Width, height: fbdev.Height, stride: fbdev.Stride}
	if err := b.setPixel(0, 1, Green); err != nil {
		t.Fatalf("setPixel inside region = %v", err)
	}
	if err := b.setPixel(0, 2, Green); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("setPixel past region = %v, want ErrInvalidCoordinate", err)
	}
}

func TestClear(t *testing.T) {
	b := newTestBuffer(t, fbdev.Stride)
	c := Color{R: 10, G: 20, B: 30, A: 40}
	if err := b.clear(c); err != nil {
		t.Fatalf("clear() = %v", err)
	}
	want := c.WithAlpha(255)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if got, _ := b.pixel(x, y); got != want {
				t.Fatalf("pixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestClearPaddedStride(t *testing.T) {
	const stride = fbdev.Stride + 64
	b := newTestBuffer(t, stride)
	for i := range b.data {
		b.data[i] = 0xEE
	}
	if err := b.clear(White); err != nil {
		t.Fatalf("clear() = %v", err)
	}
	for y := 0; y < b.height; y++ {
		row := b.data[y*stride : (y+1)*stride]
		for i, v := range row[:fbdev.Stride] {
			if v != 0xFF {
				t.Fatalf("row %d byte %d = %#x, want 0xff", y, i, v)
			}
		}
		for i, v := range row[fbdev.Stride:] {
			if v != 0xEE {
				t.Fatalf("row %d padding byte %d = %#x, want untouched 0xee", y, i, v)
			}
		}
	}
}

func TestClearRowPastRegion(t *testing.T) {
	b := pixelBuffer{data: make([]byte, fbdev.Stride*3-1), width: fbdev.Width, height: fbdev.Height, stride: fbdev.Stride}
	err := b.clear(Green)
	var sizeErr *fbdev.SizeMismatchError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("clear() = %v, want *fbdev.SizeMismatchError", err)
	}
	if sizeErr.Expected != fbdev.Stride*3 || sizeErr.Actual != len(b.data) {
		t.Errorf("SizeMismatchError = %+v", sizeErr)
	}
}

func TestToImage(t *testing.T) {
	const stride = fbdev.Stride + 32
	b := newTestBuffer(t, stride)
	if err := b.clear(Black); err != nil {
		t.Fatal(err)
	}
	if err := b.setPixel(159, 127, Color{1, 2, 3, 255}); err != nil {
		t.Fatal(err)
	}

	img := b.toImage()
	if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 128 {
		t.Fatalf("toImage() bounds = %v", img.Bounds())
	}
	got := img.RGBAAt(159, 127)
	if got.R != 1 || got.G != 2 || got.B != 3 || got.A != 255 {
		t.Errorf("RGBAAt(159, 127) = %v, want {1 2 3 255}", got)
	}
	if got := img.RGBAAt(0, 0); got.R != 0 || got.A != 255 {
		t.Errorf("RGBAAt(0, 0) = %v, want opaque black", got)
	}
}
