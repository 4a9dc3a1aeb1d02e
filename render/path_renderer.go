// Package render rasterizes boxes and routed edges into a canvas.
package render

import (
	"fmt"

	"termgraph/canvas"
	"termgraph/core"
)

// PathRenderer draws routed paths with line, corner and arrowhead glyphs.
type PathRenderer struct {
	style Style
}

// NewPathRenderer creates a path renderer using the given glyph set.
func NewPathRenderer(style Style) *PathRenderer {
	return &PathRenderer{style: style}
}

// Style returns the glyph set used by the renderer.
func (r *PathRenderer) Style() Style {
	return r.style
}

// DrawPath rasterizes path into c.
//
// Each step gets the line glyph for its direction. Where the direction
// changes, the previous step's cell is overwritten with the matching corner.
// The last cell finally receives the arrowhead. A path without moves draws
// nothing.
func (r *PathRenderer) DrawPath(c *canvas.Canvas, path core.Path) error {
	if path.Length() < 2 {
		return nil
	}

	for i, step := range path.Steps {
		if err := c.Set(step.Point, r.style.LineGlyph(step.Direction)); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if i == 0 {
			continue
		}

		prev := path.Steps[i-1]
		if prev.Direction == step.Direction {
			continue
		}
		if corner, ok := r.style.CornerGlyph(prev.Direction, step.Direction); ok {
			if err := c.Set(prev.Point, corner); err != nil {
				return fmt.Errorf("corner at step %d: %w", i-1, err)
			}
		}
	}

	last := path.Last()
	if err := c.Set(last.Point, r.style.ArrowGlyph(last.Direction)); err != nil {
		return fmt.Errorf("arrowhead: %w", err)
	}
	return nil
}

// DrawBox draws a box outline with its top-left corner at origin.
// The interior is cleared to blanks, the four sides are drawn without
// their corners, then the corners are stamped on top.
func DrawBox(c *canvas.Canvas, origin core.Point, width, height int, style BoxStyle) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("box %dx%d too small to draw", width, height)
	}

	at := func(x, y int) core.Point {
		return origin.Add(core.Point{X: x, Y: y})
	}

	if width > 2 {
		for y := 1; y < height-1; y++ {
			if err := c.DrawLine(at(1, y), at(width-2, y), ' '); err != nil {
				return err
			}
		}
		if err := c.DrawLine(at(1, 0), at(width-2, 0), style.Horizontal); err != nil {
			return err
		}
		if err := c.DrawLine(at(1, height-1), at(width-2, height-1), style.Horizontal); err != nil {
			return err
		}
	}

	if height > 2 {
		if err := c.DrawLine(at(0, 1), at(0, height-2), style.Vertical); err != nil {
			return err
		}
		if err := c.DrawLine(at(width-1, 1), at(width-1, height-2), style.Vertical); err != nil {
			return err
		}
	}

	corners := []struct {
		p core.Point
		r rune
	}{
		{at(0, 0), style.TopLeft},
		{at(width-1, 0), style.TopRight},
		{at(0, height-1), style.BottomLeft},
		{at(width-1, height-1), style.BottomRight},
	}
	for _, corner := range corners {
		if err := c.Set(corner.p, corner.r); err != nil {
			return err
		}
	}
	return nil
}
