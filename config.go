package fb

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/linht/fb/text"
)

// DefaultDevice is the frame buffer device of the LinHT front panel.
const DefaultDevice = "/dev/fb0"

// Config is the on-disk engine configuration.
//
//	device: /dev/fb0
//	fonts:
//	  regular: fonts/DidactGothic-Regular.ttf
type Config struct {
	// Device is the frame buffer device path. Empty means DefaultDevice.
	Device string `yaml:"device"`

	// Fonts maps font names (see text.ParseFontID) to resource paths.
	// An empty path loads the font's default path.
	Fonts map[string]string `yaml:"fonts"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fb: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration and checks the font names.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("fb: parse config: %w", err)
	}
	for name := range c.Fonts {
		if _, err := text.ParseFontID(name); err != nil {
			return Config{}, fmt.Errorf("fb: parse config: %w", err)
		}
	}
	return c, nil
}

// DevicePath returns Device, or DefaultDevice when unset.
func (c Config) DevicePath() string {
	if c.Device == "" {
		return DefaultDevice
	}
	return c.Device
}

// Options converts the font table to WithFont options, in FontID order.
func (c Config) Options() ([]Option, error) {
	byID := make(map[text.FontID]string, len(c.Fonts))
	for name, path := range c.Fonts {
		id, err := text.ParseFontID(name)
		if err != nil {
			return nil, err
		}
		byID[id] = path
	}

	opts := make([]Option, 0, len(byID))
	for _, id := range slices.Sorted(maps.Keys(byID)) {
		opts = append(opts, WithFont(id, byID[id]))
	}
	return opts, nil
}

// FontPath returns the configured path for id, or "" when none is set.
func (c Config) FontPath(id text.FontID) string {
	for name, path := range c.Fonts {
		if got, err := text.ParseFontID(name); err == nil && got == id {
			return path
		}
	}
	return ""
}
