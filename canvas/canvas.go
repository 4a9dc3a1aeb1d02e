// Package canvas provides the fixed-size character grid that diagrams are rendered into.
package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"termgraph/core"
)

// Common errors
var (
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrInvalidSize    = errors.New("invalid canvas size")
	ErrInvalidFill    = errors.New("fill glyph must be a single-width character")
	ErrNotAxisAligned = errors.New("line is not horizontal or vertical")
)

// RowTerminator ends every serialized row.
const RowTerminator = '\n'

// continuation marks the second cell of a double-width rune.
const continuation = '\x00'

// Canvas is a rune grid of height rows by width+1 columns; the extra column of
// every row holds RowTerminator and is never writable.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - Writable cells are 0 <= x < width, 0 <= y < height
//
// Writes are last-writer-wins. Canvas is not safe for concurrent writes.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
	fill   rune
}

// New creates a canvas of the given size with every cell set to fill.
func New(width, height int, fill rune) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	if runewidth.RuneWidth(fill) != 1 {
		return nil, fmt.Errorf("%q: %w", fill, ErrInvalidFill)
	}

	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width+1)
		cells[y][width] = RowTerminator
	}

	c := &Canvas{
		cells:  cells,
		width:  width,
		height: height,
		fill:   fill,
	}
	c.Clear()
	return c, nil
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Fill returns the glyph empty cells are set to.
func (c *Canvas) Fill() rune {
	return c.fill
}

// Bounds returns the writable area.
func (c *Canvas) Bounds() core.Bounds {
	return core.NewBounds(c.width, c.height)
}

// Clear resets every writable cell to the fill glyph.
func (c *Canvas) Clear() {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.cells[y][x] = c.fill
		}
	}
}

// Get returns the character at the given position.
// The second cell of a double-width rune reads as the fill glyph.
func (c *Canvas) Get(p core.Point) (rune, error) {
	if !c.inBounds(p) {
		return 0, fmt.Errorf("get %v: %w", p, ErrOutOfBounds)
	}
	r := c.cells[p.Y][p.X]
	if r == continuation {
		return c.fill, nil
	}
	return r, nil
}

// Set places a single-width glyph at the given position.
func (c *Canvas) Set(p core.Point, r rune) error {
	if !c.inBounds(p) {
		return fmt.Errorf("set %v: %w", p, ErrOutOfBounds)
	}
	c.put(p.X, p.Y, r)
	return nil
}

// Draw writes text left to right starting at position+offset.
// Text is NFC-normalized; double-width runes take two cells and zero-width
// runes are dropped. Nothing is written unless the whole text fits.
func (c *Canvas) Draw(text string, position, offset core.Point) error {
	start := position.Add(offset)
	if !c.inBounds(start) {
		return fmt.Errorf("draw %q at %v: %w", text, start, ErrOutOfBounds)
	}

	text = norm.NFC.String(text)
	if end := start.X + runewidth.StringWidth(text); end > c.width {
		return fmt.Errorf("draw %q at %v ends at column %d: %w", text, start, end, ErrOutOfBounds)
	}

	x := start.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.put(x, start.Y, r)
		if w == 2 {
			c.put(x+1, start.Y, continuation)
		}
		x += w
	}
	return nil
}

// DrawLine writes glyph on every cell of the axis-aligned segment from start
// to end, both inclusive.
func (c *Canvas) DrawLine(start, end core.Point, glyph rune) error {
	if start.X != end.X && start.Y != end.Y {
		return fmt.Errorf("line %v-%v: %w", start, end, ErrNotAxisAligned)
	}
	if !c.inBounds(start) || !c.inBounds(end) {
		return fmt.Errorf("line %v-%v: %w", start, end, ErrOutOfBounds)
	}

	step := end.Sub(start).Norm()
	for p := start; ; p = p.Add(step) {
		c.put(p.X, p.Y, glyph)
		if p == end {
			break
		}
	}
	return nil
}

// String returns every row followed by RowTerminator.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		for _, r := range c.cells[y] {
			if r != continuation {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// Lines returns the rows without terminators.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var sb strings.Builder
		for _, r := range c.cells[y][:c.width] {
			if r != continuation {
				sb.WriteRune(r)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

func (c *Canvas) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// put writes one cell, first clearing any double-width rune it would split.
func (c *Canvas) put(x, y int, r rune) {
	row := c.cells[y]
	switch {
	case row[x] == continuation && r != continuation && x > 0:
		row[x-1] = c.fill
	case x+1 < c.width && row[x+1] == continuation:
		row[x+1] = c.fill
	}
	row[x] = r
}
