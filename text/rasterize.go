package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics describes the placement of a rasterized glyph.
type Metrics struct {
	// XMin is the left edge of the bitmap relative to the pen position.
	XMin int

	// YMin is the bottom edge of the bitmap relative to the baseline,
	// positive up. Glyphs with descenders have a negative YMin.
	YMin int

	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// Advance is how far the pen moves after this glyph, in pixels.
	Advance float64
}

// Ascent returns the distance from the baseline to the top of the bitmap.
func (m Metrics) Ascent() int {
	return m.Height + m.YMin
}

// Glyph is a rasterized coverage bitmap with its metrics.
type Glyph struct {
	Metrics

	// Coverage holds Width*Height coverage values, row-major, top row first.
	// 0 is empty, 255 fully covered.
	Coverage []byte
}

// Rasterizer renders a single rune of a font at a pixel size.
type Rasterizer interface {
	Rasterize(f *Font, r rune, size float64) (Glyph, error)
}

// OutlineRasterizer rasterizes with golang.org/x/image/font/opentype at
// 72 DPI, so size is in pixels per em, with hinting disabled.
type OutlineRasterizer struct{}

// Rasterize implements Rasterizer.
func (OutlineRasterizer) Rasterize(f *Font, r rune, size float64) (Glyph, error) {
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return Glyph{}, fmt.Errorf("text: create face for %s at %.2f: %w", f.name, size, err)
	}
	defer func() {
		_ = face.Close()
	}()

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		// No outline to draw; keep the advance so layout still moves on.
		adv, _ := face.GlyphAdvance(r)
		return Glyph{Metrics: Metrics{Advance: fixedToFloat64(adv)}}, nil
	}

	g := Glyph{
		Metrics: Metrics{
			XMin:    dr.Min.X,
			YMin:    -dr.Max.Y,
			Width:   dr.Dx(),
			Height:  dr.Dy(),
			Advance: fixedToFloat64(advance),
		},
	}
	g.Coverage = coverage(mask, maskp, g.Width, g.Height)
	return g, nil
}

// coverage copies the w*h alpha values of mask starting at maskp. The face
// reuses its mask between calls, so the bitmap must be copied out.
func coverage(mask image.Image, maskp image.Point, w, h int) []byte {
	out := make([]byte, w*h)
	if mask == nil {
		return out
	}
	src := image.Rect(maskp.X, maskp.Y, maskp.X+w, maskp.Y+h)
	if a, ok := mask.(*image.Alpha); ok && src.In(a.Rect) {
		for y := 0; y < h; y++ {
			i := a.PixOffset(maskp.X, maskp.Y+y)
			copy(out[y*w:(y+1)*w], a.Pix[i:i+w])
		}
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, alpha := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			out[y*w+x] = uint8(alpha >> 8)
		}
	}
	return out
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
