package terminal

import (
	"strings"

	"github.com/fatih/color"

	"termgraph/render"
)

// Colorizer wraps runs of rendered glyphs in ANSI colours by class.
type Colorizer struct {
	style  render.Style
	fill   rune
	colors map[render.GlyphClass]*color.Color
}

// NewColorizer creates a colorizer. When enabled is false Colorize returns
// its input unchanged regardless of the terminal.
func NewColorizer(style render.Style, fill rune, enabled bool) *Colorizer {
	colors := map[render.GlyphClass]*color.Color{
		render.ClassLine:  color.New(color.FgCyan),
		render.ClassArrow: color.New(color.FgYellow, color.Bold),
		render.ClassText:  color.New(color.Bold),
	}
	for _, c := range colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Colorizer{style: style, fill: fill, colors: colors}
}

// Colorize colours text line by line. Blank cells and newlines are left bare.
func (z *Colorizer) Colorize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	var run []rune
	class := render.ClassBlank
	flush := func() {
		if len(run) == 0 {
			return
		}
		if c, ok := z.colors[class]; ok {
			sb.WriteString(c.Sprint(string(run)))
		} else {
			sb.WriteString(string(run))
		}
		run = run[:0]
	}

	for _, r := range text {
		if r == '\n' {
			flush()
			sb.WriteRune(r)
			continue
		}
		next := z.style.Classify(r, z.fill)
		if next != class {
			flush()
			class = next
		}
		run = append(run, r)
	}
	flush()
	return sb.String()
}
