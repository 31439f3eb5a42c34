package text

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
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

// loadTestFont returns Go Regular bound to id.
func loadTestFont(t *testing.T, id FontID) *Font {
	t.Helper()
	f, err := ParseFont(id, "goregular.ttf", goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont() error = %v", err)
	}
	return f
}

// countingRasterizer counts calls to the wrapped rasterizer.
type countingRasterizer struct {
	Rasterizer
	calls int
}

func (c *countingRasterizer) Rasterize(f *Font, r rune, size float64) (Glyph, error) {
	c.calls++
	return c.Rasterizer.Rasterize(f, r, size)
}
