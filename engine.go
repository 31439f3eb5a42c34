package fb

import (
	"image"
	"image/png"
	"log/slog"
	"os"
	"sync"

	"github.com/linht/fb/fbdev"
	"github.com/linht/fb/text"
)

// Engine renders pixels and text into a frame buffer.
//
// The Engine is the sole owner of the frame buffer region, the font registry
// and the glyph cache. Every method holds one mutex for its whole duration,
// so an Engine may be shared between goroutines, but calls never overlap.
// The raw region is never handed out.
type Engine struct {
	mu sync.Mutex

	region fbdev.Region
	info   fbdev.Info
	buf    pixelBuffer

	fonts  *text.Registry
	glyphs *text.GlyphCache

	logger *slog.Logger
	closed bool
}

// Open maps the frame buffer device at path and returns an Engine drawing
// into it. Geometry is probed from the device, or taken from
// fbdev.Fallback when the device does not answer, and validated before
// mapping. Open does not retry: waiting for the device to appear is the
// caller's job.
func Open(path string, opts ...Option) (*Engine, error) {
	m, err := fbdev.Open(path)
	if err != nil {
		return nil, err
	}

	e, err := newEngine(m, opts...)
	if err != nil {
		return nil, err
	}

	if !m.Probed() {
		e.log().Warn("fb: device geometry query failed, using fallback profile",
			"path", path, "info", e.info.String())
	}
	e.log().Info("fb: device opened", "path", path, "info", e.info.String())
	return e, nil
}

// NewMemory returns an Engine drawing into a heap-backed buffer with the
// given geometry. The geometry must pass fbdev.Info.Validate.
func NewMemory(info fbdev.Info, opts ...Option) (*Engine, error) {
	m, err := fbdev.NewMemory(info)
	if err != nil {
		return nil, err
	}
	return newEngine(m, opts...)
}

// newEngine takes ownership of region. The region is closed if
// construction fails.
func newEngine(region fbdev.Region, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	info := region.Info()
	buf, err := newPixelBuffer(region.Bytes(), info.Width, info.Height, info.LineLength)
	if err != nil {
		_ = region.Close()
		return nil, err
	}

	e := &Engine{
		region: region,
		info:   info,
		buf:    buf,
		fonts:  text.NewRegistry(),
		glyphs: text.NewGlyphCache(o.rasterizer),
		logger: o.logger,
	}

	for _, fs := range o.fonts {
		if err := e.loadFont(fs.id, fs.path); err != nil {
			_ = region.Close()
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return Logger()
}

// Info returns the device geometry. It never changes after construction.
func (e *Engine) Info() fbdev.Info {
	return e.info
}

// LoadFont reads the font at path, or id.DefaultPath() when path is empty,
// and binds it to id, replacing any previous font and its cached glyphs.
// Read and parse failures are *text.LoadError.
func (e *Engine) LoadFont(id text.FontID, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	return e.loadFont(id, path)
}

// LoadFontData binds in-memory font data to id. name is used in logs and
// errors.
func (e *Engine) LoadFontData(id text.FontID, name string, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	f, err := e.fonts.LoadData(id, name, data)
	if err != nil {
		return err
	}
	e.fontLoaded(f)
	return nil
}

func (e *Engine) loadFont(id text.FontID, path string) error {
	f, err := e.fonts.Load(id, path)
	if err != nil {
		return err
	}
	e.fontLoaded(f)
	return nil
}

func (e *Engine) fontLoaded(f *text.Font) {
	e.glyphs.Drop(f.ID())
	e.log().Info("fb: font loaded", "id", f.ID().String(), "path", f.Path(), "family", f.Name())
}

// SetPixel composites c over the pixel at (x, y). Coordinates outside the
// device return a *CoordinateError and write nothing.
func (e *Engine) SetPixel(x, y int, c Color) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	return e.buf.setPixel(x, y, c)
}

// Pixel reads back the stored color at (x, y).
func (e *Engine) Pixel(x, y int) (Color, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return Color{}, ErrClosed
	}
	return e.buf.pixel(x, y)
}

// ClearScreen fills every visible pixel with c at full opacity.
func (e *Engine) ClearScreen(c Color) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	return e.buf.clear(c)
}

// Flush is a no-op: writes go straight to the synchronously mapped device.
// It is kept so callers can mark frame boundaries.
func (e *Engine) Flush() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	return nil
}

// CacheStats returns glyph cache statistics.
func (e *Engine) CacheStats() text.CacheStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.glyphs.Stats()
}

// Snapshot returns a copy of the visible frame buffer.
func (e *Engine) Snapshot() (*image.RGBA, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	return e.buf.toImage(), nil
}

// SavePNG writes a snapshot of the frame buffer to a PNG file.
func (e *Engine) SavePNG(path string) error {
	img, err := e.Snapshot()
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases the frame buffer. Further calls return ErrClosed.
// Close is idempotent.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.buf = pixelBuffer{}
	return e.region.Close()
}
