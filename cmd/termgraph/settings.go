package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"termgraph/config"
	"termgraph/demo"
	"termgraph/diagram"
	"termgraph/render"
	"termgraph/terminal"
	"termgraph/trace"
)

// settings is the resolved configuration for one command run.
type settings struct {
	cfg    config.Config
	script *demo.Script
	opts   []diagram.Option
	caps   terminal.Capabilities
}

// loadSettings reads the config file, applies flag overrides and validates
// the result.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("width") {
		w, _ := flags.GetInt("width")
		cfg.Canvas.Width = int64(w)
	}
	if flags.Changed("height") {
		h, _ := flags.GetInt("height")
		cfg.Canvas.Height = int64(h)
	}
	if flags.Changed("fill") {
		cfg.Canvas.Fill, _ = flags.GetString("fill")
	}
	if ascii, _ := flags.GetBool("ascii"); ascii {
		cfg.Style.Glyphs = render.ASCIIStyle.Name
	}
	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetString("color")
	}
	if tr, _ := flags.GetBool("trace"); tr {
		cfg.Trace.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	s := &settings{cfg: cfg, script: demo.Default(), caps: terminal.DetectCapabilities(os.Getenv)}
	if s.cfg.Style.Glyphs == config.GlyphsAuto {
		s.cfg.Style.Glyphs = s.caps.Glyphs()
	}
	if path, _ := flags.GetString("script"); path != "" {
		script, err := demo.LoadScript(path)
		if err != nil {
			return nil, err
		}
		s.script = script
	}
	if cfg.Trace.Enabled {
		s.opts = append(s.opts, diagram.WithTracer(trace.NewStream(cmd.ErrOrStderr())))
	}
	return s, nil
}

// useColor resolves the auto color mode against the output w.
func (s *settings) useColor(w io.Writer) bool {
	switch s.cfg.Output.Color {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	default:
		return !s.caps.NoColor && isTerminal(w)
	}
}
