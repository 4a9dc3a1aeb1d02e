// Package config loads renderer settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/mattn/go-runewidth"

	"termgraph/render"
)

// ErrInvalidConfig is returned for values that decode but make no sense.
var ErrInvalidConfig = errors.New("invalid config")

// Color modes for terminal output.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// GlyphsAuto lets the caller pick glyphs from the terminal environment.
// Left unresolved it renders as unicode.
const GlyphsAuto = "auto"

// Corner table names.
const (
	CornersTable     = "table"
	CornersGeometric = "geometric"
)

// Config is the full settings file.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Style  StyleConfig  `toml:"style"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`
}

// CanvasConfig sizes the drawing surface.
type CanvasConfig struct {
	Width  int64  `toml:"width"`
	Height int64  `toml:"height"`
	Fill   string `toml:"fill"`
}

// StyleConfig picks glyphs.
type StyleConfig struct {
	Glyphs            string `toml:"glyphs"`
	Corners           string `toml:"corners"`
	DirectionalArrows bool   `toml:"directional_arrows"`
}

// OutputConfig controls how rendered text is written.
type OutputConfig struct {
	Color string `toml:"color"`
}

// TraceConfig enables the scene tracer.
type TraceConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 30, Height: 12, Fill: " "},
		Style:  StyleConfig{Glyphs: render.UnicodeStyle.Name, Corners: CornersTable},
		Output: OutputConfig{Color: ColorAuto},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if meta.IsDefined("canvas", "fill") && cfg.Canvas.Fill == "" {
		return Config{}, fmt.Errorf("%s: [canvas].fill is empty: %w", path, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, _, err := c.Size(); err != nil {
		return err
	}
	if _, err := c.FillRune(); err != nil {
		return err
	}
	if _, err := c.RenderStyle(); err != nil {
		return err
	}
	switch c.Output.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("[output].color %q (expected: auto|on|off): %w", c.Output.Color, ErrInvalidConfig)
	}
	return nil
}

// Size returns the canvas dimensions as ints.
func (c Config) Size() (width, height int, err error) {
	width, err = safecast.Conv[int](c.Canvas.Width)
	if err != nil {
		return 0, 0, fmt.Errorf("[canvas].width: %w", err)
	}
	height, err = safecast.Conv[int](c.Canvas.Height)
	if err != nil {
		return 0, 0, fmt.Errorf("[canvas].height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("[canvas] size %dx%d: %w", width, height, ErrInvalidConfig)
	}
	return width, height, nil
}

// FillRune returns the fill glyph. It must be one rune one cell wide.
func (c Config) FillRune() (rune, error) {
	runes := []rune(c.Canvas.Fill)
	if len(runes) != 1 || runewidth.RuneWidth(runes[0]) != 1 {
		return 0, fmt.Errorf("[canvas].fill %q must be a single narrow character: %w", c.Canvas.Fill, ErrInvalidConfig)
	}
	return runes[0], nil
}

// RenderStyle builds the glyph set described by [style].
func (c Config) RenderStyle() (render.Style, error) {
	name := c.Style.Glyphs
	if name == GlyphsAuto {
		name = render.UnicodeStyle.Name
	}
	style, ok := render.GetStyle(name)
	if !ok {
		return render.Style{}, fmt.Errorf("[style].glyphs %q (expected: unicode|ascii|auto): %w", c.Style.Glyphs, ErrInvalidConfig)
	}

	switch c.Style.Corners {
	case CornersTable, "":
		style.Corners = render.TableCorners
	case CornersGeometric:
		style.Corners = render.GeometricCorners
	default:
		return render.Style{}, fmt.Errorf("[style].corners %q (expected: table|geometric): %w", c.Style.Corners, ErrInvalidConfig)
	}
	style.DirectionalArrows = c.Style.DirectionalArrows
	return style, nil
}
