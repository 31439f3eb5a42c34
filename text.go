package fb

import (
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/linht/fb/text"
)

// spaceAdvance is the pen advance of ' ' as a fraction of the font size.
const spaceAdvance = 0.3

// WriteText draws s with its baseline at pos.Y and its pen starting at
// pos.X, in font id at size pixels per em, colored c.
//
// All glyphs of one call share a baseline: the tallest ascent of the string
// positions every glyph. Spaces advance the pen by size*0.3 without drawing.
// There is no wrapping; glyph pixels outside the device are clipped and are
// not an error. Coverage replaces the alpha of c, so c.A is ignored.
//
// Failures before drawing are a *text.NotLoadedError when id has no font,
// a *text.SizeError when size is not finite and positive, and a
// *text.GlyphError when the rasterizer returns a malformed bitmap. All are
// reported before any pixel changes. WriteText never loads fonts itself.
func (e *Engine) WriteText(s string, pos Point, size float64, c Color, id text.FontID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	f, err := e.fonts.Font(id)
	if err != nil {
		return err
	}
	if err := text.CheckSize(size); err != nil {
		return err
	}
	s = norm.NFC.String(s)

	maxAscent, err := e.maxAscent(f, s, size)
	if err != nil {
		return err
	}

	cursor := float64(pos.X)
	baseline := pos.Y
	width, height := e.info.Width, e.info.Height

	for _, r := range s {
		if r == ' ' {
			cursor += size * spaceAdvance
			continue
		}

		g, err := e.glyphs.Lookup(f, r, size)
		if err != nil {
			return err
		}

		gx := int(math.Round(cursor + float64(g.XMin)))
		charAscent := g.Ascent()
		gy := baseline - maxAscent + (maxAscent - charAscent)

		for y := 0; y < g.Height; y++ {
			py := gy + y
			if py < 0 || py >= height {
				continue
			}
			row := g.Coverage[y*g.Width : (y+1)*g.Width]
			for x, cov := range row {
				px := gx + x
				if px < 0 || px >= width || cov == 0 {
					continue
				}
				if err := e.buf.setPixel(px, py, Color{R: c.R, G: c.G, B: c.B, A: cov}); err != nil {
					return err
				}
			}
		}

		cursor += g.Advance
	}
	return nil
}

// maxAscent returns the tallest ascent of the non-space runes of s.
// Runes missing from the font are logged; they are drawn as .notdef.
func (e *Engine) maxAscent(f *text.Font, s string, size float64) (int, error) {
	maxAscent := 0
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if !f.Covers(r) {
			e.log().Debug("fb: rune not covered by font", "rune", string(r), "font", f.Name())
		}
		m, err := e.glyphs.Metrics(f, r, size)
		if err != nil {
			return 0, err
		}
		maxAscent = max(maxAscent, m.Ascent())
	}
	return maxAscent, nil
}

// MeasureText returns the horizontal pen advance WriteText would produce
// for s, in pixels. It draws nothing but fills the glyph cache.
func (e *Engine) MeasureText(s string, size float64, id text.FontID) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0, ErrClosed
	}

	f, err := e.fonts.Font(id)
	if err != nil {
		return 0, err
	}
	if err := text.CheckSize(size); err != nil {
		return 0, err
	}

	var advance float64
	for _, r := range norm.NFC.String(s) {
		if r == ' ' {
			advance += size * spaceAdvance
			continue
		}
		m, err := e.glyphs.Metrics(f, r, size)
		if err != nil {
			return 0, err
		}
		advance += m.Advance
	}
	return advance, nil
}
