// Package ember is the engine-facing surface of the toolkit: application
// configuration, native engine bootstrap, and the frame pump that drives
// the retained control tree in github.com/emberui/ember/retained.
package ember

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/emberui/ember/retained"
)

// AppConfig is the ember.toml configuration file.
type AppConfig struct {
	App       AppSection       `toml:"app"`
	Surface   SurfaceSection   `toml:"surface"`
	Scrolling ScrollingSection `toml:"scrolling"`
	Engine    EngineSection    `toml:"engine"`
}

type AppSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type SurfaceSection struct {
	// Pixel dimensions of the display surface.
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ScrollingSection struct {
	// Style is "pixel" or "item".
	Style string `toml:"style"`
	// LineHeight is the pixel delta of one line step under pixel scrolling.
	LineHeight int `toml:"line_height"`
}

type EngineSection struct {
	// LibraryPath overrides where the native engine library is loaded
	// from. Empty uses the platform default next to the binary.
	LibraryPath string `toml:"library_path"`
	// MeasureCacheSize bounds the text-measurement cache.
	MeasureCacheSize int `toml:"measure_cache_size"`
}

// DefaultAppConfig returns sensible defaults for a small embedded display.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		App: AppSection{Name: "ember"},
		Surface: SurfaceSection{
			Width:  320,
			Height: 240,
		},
		Scrolling: ScrollingSection{
			Style:      "item",
			LineHeight: retained.DefaultScrollLine,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults; absent keys keep
// their default values.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c AppConfig) validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", c.Surface.Width, c.Surface.Height)
	}
	switch c.Scrolling.Style {
	case "", "pixel", "item":
	default:
		return fmt.Errorf("unknown scrolling style %q", c.Scrolling.Style)
	}
	if c.Scrolling.LineHeight < 0 {
		return fmt.Errorf("invalid line height %d", c.Scrolling.LineHeight)
	}
	return nil
}

// ScrollingStyle maps the config string onto the retained-mode enum.
func (c AppConfig) ScrollingStyle() retained.ScrollingStyle {
	if c.Scrolling.Style == "pixel" {
		return retained.ScrollByPixel
	}
	return retained.ScrollByItem
}

// ApplyScrolling configures a viewer from the [scrolling] section: the
// style always, the line height when set. A zero line height keeps the
// viewer's default.
func (c AppConfig) ApplyScrolling(v *retained.ScrollViewer) {
	v.SetScrollingStyle(c.ScrollingStyle())
	if c.Scrolling.LineHeight > 0 {
		v.SetLineHeight(c.Scrolling.LineHeight)
	}
}
