// Command fbdemo draws the LinHT welcome screen.
//
// By default it renders onto /dev/fb0. With -png the screen is rendered
// into memory and saved as an image instead, which works on any machine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/linht/fb"
	"github.com/linht/fb/fbdev"
	"github.com/linht/fb/text"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("fbdemo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		config  = flags.String("config", "", "YAML config file")
		device  = flags.String("device", "", "frame buffer device (default "+fb.DefaultDevice+")")
		font    = flags.String("font", "", "regular font file (default "+text.Regular.DefaultPath()+")")
		output  = flags.String("png", "", "render into memory and save a PNG here")
		verbose = flags.Bool("v", false, "log to stderr")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	logger := log.New(stderr, "fbdemo: ", 0)

	cfg := fb.Config{}
	if *config != "" {
		var err error
		if cfg, err = fb.LoadConfig(*config); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *font != "" {
		cfg.Fonts = map[string]string{"regular": *font}
	}

	// Configured fonts are loaded while the engine is built; a bad entry
	// fails construction.
	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *verbose {
		opts = append(opts, fb.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	var e *fb.Engine
	if *output != "" {
		e, err = fb.NewMemory(fbdev.Fallback(), opts...)
	} else {
		e, err = fb.Open(cfg.DevicePath(), opts...)
	}
	if err != nil {
		return fmt.Errorf("open frame buffer: %w", err)
	}
	defer func() {
		if err := e.Close(); err != nil {
			logger.Printf("Failed to close frame buffer: %v", err)
		}
	}()

	if cfg.FontPath(text.Regular) == "" {
		if err := loadDefaultFont(e, logger); err != nil {
			return fmt.Errorf("load font: %w", err)
		}
	}

	if err := drawWelcome(e); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	if *output != "" {
		if err := e.SavePNG(*output); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		logger.Printf("Screen saved to %s (%s)", *output, e.Info())
	}
	return nil
}

// loadDefaultFont loads the regular font from its default resource path.
// A missing resource falls back to the built-in Go font.
func loadDefaultFont(e *fb.Engine, logger *log.Logger) error {
	err := e.LoadFont(text.Regular, "")
	if err == nil {
		return nil
	}
	var le *text.LoadError
	if errors.As(err, &le) && le.Op == "read" {
		logger.Printf("Default font unavailable (%v), using Go Regular", le.Err)
		return e.LoadFontData(text.Regular, "goregular", goregular.TTF)
	}
	return err
}

func drawWelcome(e *fb.Engine) error {
	if err := e.ClearScreen(fb.Black); err != nil {
		return err
	}
	if err := e.WriteText(">LinHT_", fb.Pt(10, 65), 38, fb.Green, text.Regular); err != nil {
		return err
	}
	if err := e.WriteText("by M17 Foundation", fb.Pt(20, 90), 14, fb.White, text.Regular); err != nil {
		return err
	}
	return e.Flush()
}
