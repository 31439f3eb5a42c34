// Package fb renders pixels and outline-font text straight into a
// memory-mapped Linux frame buffer.
//
// # Overview
//
// fb drives the 160x128 RGBA8888 front panel of the LinHT radio. An Engine
// owns the mapped device memory, a font registry and a glyph cache, and
// exposes a small immediate-mode API: set a pixel, clear the screen, write
// a line of text. Writes land in device memory as they happen; there is no
// back buffer.
//
// # Quick Start
//
//	e, err := fb.Open("/dev/fb0", fb.WithFont(text.Regular, ""))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer e.Close()
//
//	_ = e.ClearScreen(fb.Black)
//	_ = e.WriteText(">LinHT_", fb.Pt(10, 65), 38, fb.Green, text.Regular)
//	_ = e.Flush()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Color, Point, Config
//   - fbdev: device geometry probe, validation, mmap, heap-backed regions
//   - text: font registry, outline rasterizer, glyph cache
//
// # Compositing
//
// SetPixel overwrites when alpha is 255, skips when alpha is 0 and
// otherwise blends each channel as (fg*a + bg*(255-a)) / 255 with integer
// division, storing alpha 255. Text uses the same rule with glyph coverage
// as the alpha.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Text positions name the pen start on the baseline
//
// # Errors
//
// Every operation returns an error instead of panicking or writing outside
// the mapped region. Out-of-range pixels are *CoordinateError; a missing
// font is *text.NotLoadedError and aborts only that call.
package fb
