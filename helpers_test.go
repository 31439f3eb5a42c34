package fb

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/linht/fb/fbdev"
	"github.com/linht/fb/text"
)

// writeTestFont writes the Go Regular font to a temp file and returns its path.
func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

// newTestEngine returns a memory-backed engine with the fallback geometry.
func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewMemory(fbdev.Fallback(), opts...)
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	return e
}

// newTextEngine returns a cleared black engine with Go Regular loaded.
func newTextEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithFont(text.Regular, writeTestFont(t))}, opts...)
	e := newTestEngine(t, opts...)
	if err := e.ClearScreen(Black); err != nil {
		t.Fatalf("ClearScreen() = %v", err)
	}
	return e
}

// rawBytes copies the engine's region.
func rawBytes(e *Engine) []byte {
	return append([]byte(nil), e.buf.data...)
}

// inked returns the coordinates of every pixel that differs from bg.
func inked(t *testing.T, e *Engine, bg Color) []Point {
	t.Helper()
	var pts []Point
	for y := 0; y < e.info.Height; y++ {
		for x := 0; x < e.info.Width; x++ {
			c, err := e.Pixel(x, y)
			if err != nil {
				t.Fatalf("Pixel(%d, %d) = %v", x, y, err)
			}
			if c != bg {
				pts = append(pts, Pt(x, y))
			}
		}
	}
	return pts
}

// blockRasterizer returns fixed rectangular glyphs, for exact layout checks.
type blockRasterizer struct {
	glyphs map[rune]text.Glyph
	calls  int
}

func (b *blockRasterizer) Rasterize(_ *text.Font, r rune, _ float64) (text.Glyph, error) {
	b.calls++
	g := b.glyphs[r]
	g.Coverage = append([]byte(nil), g.Coverage...)
	return g, nil
}

// block builds a w*h glyph of uniform coverage.
func block(w, h, xmin, ymin int, advance float64, coverage byte) text.Glyph {
	cov := make([]byte, w*h)
	for i := range cov {
		cov[i] = coverage
	}
	return text.Glyph{
		Metrics: text.Metrics{
			XMin:    xmin,
			YMin:    ymin,
			Width:   w,
			Height:  h,
			Advance: advance,
		},
		Coverage: cov,
	}
}

// countingRasterizer counts calls to the outline rasterizer.
type countingRasterizer struct {
	text.OutlineRasterizer
	calls int
}

func (c *countingRasterizer) Rasterize(f *text.Font, r rune, size float64) (text.Glyph, error) {
	c.calls++
	return c.OutlineRasterizer.Rasterize(f, r, size)
}
