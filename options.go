package fb

import (
	"log/slog"

	"github.com/linht/fb/text"
)

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default: silent logging, outline rasterizer, no fonts
//	e, err := fb.Open("/dev/fb0")
//
//	// Load the body font up front and log to stderr
//	e, err := fb.Open("/dev/fb0",
//	    fb.WithFont(text.Regular, "fonts/DidactGothic-Regular.ttf"),
//	    fb.WithLogger(slog.Default()))
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	logger     *slog.Logger
	rasterizer text.Rasterizer
	fonts      []fontSpec
}

// fontSpec is a font to load during construction.
type fontSpec struct {
	id   text.FontID
	path string
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		logger:     nil, // Falls back to Logger() at call time
		rasterizer: nil, // Will be set to text.OutlineRasterizer if nil
	}
}

// WithLogger sets the logger for one Engine, overriding SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRasterizer replaces the glyph rasterizer.
// Use this to inject a custom or instrumented rasterizer.
func WithRasterizer(r text.Rasterizer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}

// WithFont loads a font into id when the Engine is created. An empty path
// loads id.DefaultPath(). A load failure fails construction.
func WithFont(id text.FontID, path string) Option {
	return func(o *options) {
		o.fonts = append(o.fonts, fontSpec{id: id, path: path})
	}
}
