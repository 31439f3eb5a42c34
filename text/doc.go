// Package text loads outline fonts and rasterizes glyphs for the frame buffer.
//
// The pipeline has three parts:
//
//   - Registry: one loaded Font per logical FontID, read fully into memory
//   - Rasterizer: turns a rune at a floating-point pixel size into a
//     coverage bitmap plus metrics (default: golang.org/x/image/font/opentype)
//   - GlyphCache: memoizes rasterized glyphs by (FontID, rune, size bucket)
//
// # Example usage
//
//	reg := text.NewRegistry()
//	if err := reg.Load(text.Regular, ""); err != nil {
//	    log.Fatal(err)
//	}
//	f, _ := reg.Font(text.Regular)
//
//	cache := text.NewGlyphCache(nil)
//	g, err := cache.Lookup(f, 'A', 16)
//
// # Metrics
//
// Glyph metrics use a bottom-left convention: XMin is the left edge of the
// bitmap relative to the pen position and YMin is the bottom edge relative to
// the baseline, positive up. The distance from the baseline to the top of the
// bitmap is therefore Height + YMin.
//
// # Concurrency
//
// Registry and GlyphCache are not safe for concurrent use. The fb.Engine
// serializes all access to them behind its own lock.
package text
