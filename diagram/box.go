package diagram

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"termgraph/canvas"
	"termgraph/core"
	"termgraph/render"
	"termgraph/trace"
)

// Box is a labelled rectangle. Coordinates inside a box (corners, centre,
// anchors, label position) are relative to its top-left cell.
type Box struct {
	id       int
	scene    *Scene
	width    int
	height   int
	position core.Point
	label    string
	style    render.BoxStyle
	anchors  [4][]*Anchor
}

// ID returns the scene-unique identifier of the box.
func (b *Box) ID() int { return b.id }

// Width returns the box width in cells.
func (b *Box) Width() int { return b.width }

// Height returns the box height in cells.
func (b *Box) Height() int { return b.height }

// Position returns the top-left cell of the box on the canvas.
func (b *Box) Position() core.Point { return b.position }

// Label returns the box label.
func (b *Box) Label() string { return b.label }

// String implements fmt.Stringer.
func (b *Box) String() string {
	return fmt.Sprintf("box#%d", b.id)
}

// Center returns the relative centre cell.
func (b *Box) Center() core.Point {
	return core.Point{X: b.width / 2, Y: b.height / 2}
}

// Corner returns the relative position of a corner.
func (b *Box) Corner(c core.Corner) core.Point {
	switch c {
	case core.TopRight:
		return core.Point{X: b.width - 1}
	case core.BottomLeft:
		return core.Point{Y: b.height - 1}
	case core.BottomRight:
		return core.Point{X: b.width - 1, Y: b.height - 1}
	default:
		return core.Point{}
	}
}

// ToCanvas converts a box-relative point to canvas coordinates.
func (b *Box) ToCanvas(p core.Point) core.Point {
	return b.position.Add(p)
}

// LabelPosition returns the relative cell where label starts so that it is
// centred on the box's middle row. The offset is floor(width(label)/2).
func (b *Box) LabelPosition(label string) core.Point {
	center := b.Center()
	return core.Point{
		X: center.X - runewidth.StringWidth(norm.NFC.String(label))/2,
		Y: center.Y,
	}
}

// Anchors returns the anchors on one side in order.
func (b *Box) Anchors(side core.Direction) []*Anchor {
	if !side.IsResolved() {
		return nil
	}
	return append([]*Anchor(nil), b.anchors[side]...)
}

// CreateAnchor appends an anchor to side and spreads every anchor on that
// side evenly: with n anchors, anchor i sits at (i+1)*floor(length/(n+1))
// along the side. It returns the new anchor.
func (b *Box) CreateAnchor(side core.Direction) (*Anchor, error) {
	if err := b.checkRoom(side); err != nil {
		return nil, err
	}

	a := &Anchor{box: b, side: side}
	b.anchors[side] = append(b.anchors[side], a)
	b.distribute(side)
	return a, nil
}

// checkRoom verifies that one more anchor fits on side.
func (b *Box) checkRoom(side core.Direction) error {
	if !side.IsResolved() {
		return fmt.Errorf("%v on %v: %w", side, b, ErrInvalidAnchorSide)
	}
	if b.spacing(side, len(b.anchors[side])+1) == 0 {
		return fmt.Errorf("%v side of %v: %w", side, b, ErrSideFull)
	}
	return nil
}

func (b *Box) spacing(side core.Direction, n int) int {
	length := b.width
	if side == core.Left || side == core.Right {
		length = b.height
	}
	return length / (n + 1)
}

func (b *Box) distribute(side core.Direction) {
	anchors := b.anchors[side]
	step := b.spacing(side, len(anchors))

	for i, a := range anchors {
		along := (i + 1) * step
		switch side {
		case core.Up:
			a.offset = core.Point{X: along, Y: 0}
		case core.Down:
			a.offset = core.Point{X: along, Y: b.height - 1}
		case core.Left:
			a.offset = core.Point{X: 0, Y: along}
		case core.Right:
			a.offset = core.Point{X: b.width - 1, Y: along}
		}
		b.scene.tracer.Emit(trace.Event{
			Kind:    trace.KindAnchor,
			Subject: b.String(),
			Detail:  fmt.Sprintf("%v[%d/%d] at %v", side, i+1, len(anchors), a.Position()),
		})
	}
}

// Render clears the interior, draws the outline and centres the label.
// A label wider than the box is drawn as is and may cover the border.
func (b *Box) Render(c *canvas.Canvas) error {
	if err := render.DrawBox(c, b.position, b.width, b.height, b.style); err != nil {
		return err
	}
	if b.label == "" {
		return nil
	}
	return c.Draw(b.label, b.position, b.LabelPosition(b.label))
}

// Anchor is an attachment point on a box's border.
type Anchor struct {
	box    *Box
	side   core.Direction
	offset core.Point
}

// Box returns the box the anchor belongs to.
func (a *Anchor) Box() *Box { return a.box }

// Side returns the side of the box the anchor is on.
func (a *Anchor) Side() core.Direction { return a.side }

// Offset returns the anchor position relative to its box.
func (a *Anchor) Offset() core.Point { return a.offset }

// Position returns the anchor cell on the canvas.
func (a *Anchor) Position() core.Point {
	return a.box.ToCanvas(a.offset)
}

// Outside returns the canvas cell just beyond the anchor, away from the box.
func (a *Anchor) Outside() core.Point {
	unit, err := a.side.Unit()
	if err != nil {
		return a.Position()
	}
	return a.Position().Add(unit)
}
