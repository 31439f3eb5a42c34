package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrFontLoad is returned when a font resource cannot be read or parsed.
	ErrFontLoad = errors.New("text: font load error")

	// ErrFontNotLoaded is returned when no font is bound to a FontID.
	ErrFontNotLoaded = errors.New("text: font not loaded")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFontID is returned by ParseFontID for unknown names.
	ErrUnknownFontID = errors.New("text: unknown font id")

	// ErrInvalidSize is returned for NaN, infinite or non-positive sizes.
	ErrInvalidSize = errors.New("text: invalid font size")

	// ErrBadGlyph is returned when a rasterizer produces a bitmap shorter
	// than its dimensions.
	ErrBadGlyph = errors.New("text: malformed glyph bitmap")
)

// LoadError describes a failed font load. Op is "read" when the file could
// not be read and "parse" when its contents are not a usable font.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Op == "read" {
		return fmt.Sprintf("text: failed to read font file '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("text: failed to parse font '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFontLoad.
func (e *LoadError) Is(target error) bool { return target == ErrFontLoad }

// NotLoadedError is returned when a FontID has no loaded font.
type NotLoadedError struct {
	ID FontID
}

func (e *NotLoadedError) Error() string {
	return "text: font not loaded: " + e.ID.String()
}

// Is reports whether target is ErrFontNotLoaded.
func (e *NotLoadedError) Is(target error) bool { return target == ErrFontNotLoaded }

// SizeError reports an unusable font size.
type SizeError struct {
	Size float64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("text: invalid font size: %v", e.Size)
}

// Is reports whether target is ErrInvalidSize.
func (e *SizeError) Is(target error) bool { return target == ErrInvalidSize }

// GlyphError reports a rasterized glyph whose coverage does not fill its
// Width*Height bitmap.
type GlyphError struct {
	Char          rune
	Width, Height int
	Len           int
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: malformed glyph %q: %dx%d bitmap with %d coverage bytes",
		e.Char, e.Width, e.Height, e.Len)
}

// Is reports whether target is ErrBadGlyph.
func (e *GlyphError) Is(target error) bool { return target == ErrBadGlyph }
