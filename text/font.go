package text

import (
	"bytes"
	"fmt"
	"strings"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontID identifies a logical font slot. Each slot holds at most one font.
type FontID uint8

const (
	// Regular is the body text font.
	Regular FontID = iota
)

// String implements fmt.Stringer.
func (id FontID) String() string {
	switch id {
	case Regular:
		return "Regular"
	default:
		return fmt.Sprintf("FontID(%d)", uint8(id))
	}
}

// DefaultPath returns the resource path loaded when no override is given.
func (id FontID) DefaultPath() string {
	switch id {
	case Regular:
		return "fonts/DidactGothic-Regular.ttf"
	default:
		return ""
	}
}

// ParseFontID maps a case-insensitive name such as "regular" to a FontID.
func ParseFontID(name string) (FontID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "regular":
		return Regular, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFontID, name)
	}
}

// Font is a parsed, rasterizable outline font bound to a FontID.
type Font struct {
	id   FontID
	path string
	name string

	otf *opentype.Font

	// cmap answers coverage queries. It is nil when go-text could not read
	// the font; Covers then falls back to the sfnt cmap.
	cmap *gotext.Font
}

// ParseFont parses TTF/OTF data. path is used only for diagnostics.
// The returned error is a *LoadError with Op "parse".
func ParseFont(id FontID, path string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, &LoadError{Op: "parse", Path: path, Err: ErrEmptyFontData}
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, &LoadError{Op: "parse", Path: path, Err: err}
	}

	f := &Font{
		id:   id,
		path: path,
		otf:  otf,
	}
	f.name = familyName(otf)

	if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
		f.cmap = face.Font
	}

	return f, nil
}

// ID returns the slot the font was loaded into.
func (f *Font) ID() FontID { return f.id }

// Path returns the resource path the font was read from.
func (f *Font) Path() string { return f.path }

// Name returns the font family name, or "Unknown Font".
func (f *Font) Name() string { return f.name }

// Covers reports whether the font maps r to a real glyph. Runes it does not
// cover are drawn with the font's .notdef glyph.
func (f *Font) Covers(r rune) bool {
	if f.cmap != nil {
		_, ok := f.cmap.NominalGlyph(r)
		return ok
	}
	var buf sfnt.Buffer
	idx, err := f.otf.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
