package text

import "math"

// GlyphKey identifies a cached glyph.
type GlyphKey struct {
	Font FontID
	Char rune

	// Size is the size bucket, round(size*100): 0.01 px resolution.
	Size uint32
}

// CheckSize reports whether size is a usable pixel size: finite and
// positive. Other sizes are a *SizeError.
func CheckSize(size float64) error {
	if !(size > 0) || math.IsInf(size, 1) {
		return &SizeError{Size: size}
	}
	return nil
}

// SizeBucket returns the cache bucket for a pixel size.
// Non-positive and NaN sizes share bucket 0; CheckSize rejects them before
// they reach the cache.
func SizeBucket(size float64) uint32 {
	if !(size > 0) {
		return 0
	}
	b := math.Round(size * 100)
	if b > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(b)
}

// CacheStats holds glyph cache statistics.
type CacheStats struct {
	Hits       uint64
	Misses     uint64
	Insertions uint64
	Entries    int

	// Uncovered counts cached glyphs whose rune the font does not map,
	// drawn as .notdef.
	Uncovered uint64
}

// HitRate returns the hit rate as a percentage, or 0 with no lookups.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// GlyphCache memoizes rasterized glyphs by (font, rune, size bucket).
//
// There is no capacity bound and no eviction: the set of strings and sizes
// drawn on the panel is small and fixed, so the table stops growing after
// the first few frames. Entries live until Drop or process exit.
//
// GlyphCache is not safe for concurrent use.
type GlyphCache struct {
	raster  Rasterizer
	entries map[GlyphKey]Glyph
	stats   CacheStats
}

// NewGlyphCache creates a cache backed by r. A nil r uses OutlineRasterizer.
func NewGlyphCache(r Rasterizer) *GlyphCache {
	if r == nil {
		r = OutlineRasterizer{}
	}
	return &GlyphCache{
		raster:  r,
		entries: make(map[GlyphKey]Glyph),
	}
}

// Lookup returns the glyph for ch in f at size. On a miss the glyph is
// rasterized at the exact size and stored; on a hit the cached bitmap is
// returned as a copy, so callers may keep or modify it.
func (c *GlyphCache) Lookup(f *Font, ch rune, size float64) (Glyph, error) {
	g, err := c.lookup(f, ch, size)
	if err != nil {
		return Glyph{}, err
	}
	g.Coverage = append([]byte(nil), g.Coverage...)
	return g, nil
}

// Metrics returns only the metrics for ch, populating the cache on a miss.
func (c *GlyphCache) Metrics(f *Font, ch rune, size float64) (Metrics, error) {
	g, err := c.lookup(f, ch, size)
	if err != nil {
		return Metrics{}, err
	}
	return g.Metrics, nil
}

func (c *GlyphCache) lookup(f *Font, ch rune, size float64) (Glyph, error) {
	key := GlyphKey{Font: f.ID(), Char: ch, Size: SizeBucket(size)}
	if g, ok := c.entries[key]; ok {
		c.stats.Hits++
		return g, nil
	}
	c.stats.Misses++

	if err := CheckSize(size); err != nil {
		return Glyph{}, err
	}
	g, err := c.raster.Rasterize(f, ch, size)
	if err != nil {
		return Glyph{}, err
	}
	if g.Width < 0 || g.Height < 0 || len(g.Coverage) < g.Width*g.Height {
		return Glyph{}, &GlyphError{Char: ch, Width: g.Width, Height: g.Height, Len: len(g.Coverage)}
	}
	c.entries[key] = g
	c.stats.Insertions++
	if !f.Covers(ch) {
		c.stats.Uncovered++
	}
	return g, nil
}

// Contains reports whether the key is cached.
func (c *GlyphCache) Contains(key GlyphKey) bool {
	_, ok := c.entries[key]
	return ok
}

// Drop removes every entry of a font slot. It is called when the slot
// is reloaded with a different font.
func (c *GlyphCache) Drop(id FontID) {
	for k := range c.entries {
		if k.Font == id {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *GlyphCache) Stats() CacheStats {
	s := c.stats
	s.Entries = len(c.entries)
	return s
}
