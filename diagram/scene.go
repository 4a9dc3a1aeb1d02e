// Package diagram assembles boxes and edges into a scene and renders it.
package diagram

import (
	"errors"
	"fmt"

	"termgraph/canvas"
	"termgraph/core"
	"termgraph/render"
	"termgraph/trace"
)

// Common errors
var (
	ErrBoxDoesNotFit     = errors.New("box does not fit on the canvas")
	ErrInvalidBoxSize    = errors.New("box must be at least 2x2")
	ErrInvalidAnchorSide = errors.New("anchor side must be Up, Down, Left or Right")
	ErrSideFull          = errors.New("no room for another anchor on this side")
	ErrForeignBox        = errors.New("box belongs to another scene")
)

// Renderable is anything a scene can draw.
type Renderable interface {
	Render(c *canvas.Canvas) error
}

// Option configures a Scene.
type Option func(*Scene)

// WithStyle sets the glyph set used for boxes and edges.
func WithStyle(style render.Style) Option {
	return func(s *Scene) {
		s.style = style
	}
}

// WithTracer reports anchor, routing and render activity to t.
func WithTracer(t trace.Tracer) Option {
	return func(s *Scene) {
		if t != nil {
			s.tracer = t
		}
	}
}

// Scene owns a canvas and the ordered list of entities drawn onto it.
// Entities are drawn in insertion order; later entities overwrite earlier
// ones where they overlap.
type Scene struct {
	canvas *canvas.Canvas
	style  render.Style
	paths  *render.PathRenderer
	tracer trace.Tracer
	items  []Renderable
	nextID int
}

// NewScene creates an empty scene on a width x height canvas filled with fill.
func NewScene(width, height int, fill rune, opts ...Option) (*Scene, error) {
	c, err := canvas.New(width, height, fill)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		canvas: c,
		style:  render.UnicodeStyle,
		tracer: trace.Nop,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.paths = render.NewPathRenderer(s.style)
	return s, nil
}

// Canvas returns the canvas the scene renders into.
func (s *Scene) Canvas() *canvas.Canvas { return s.canvas }

// Style returns the scene's glyph set.
func (s *Scene) Style() render.Style { return s.style }

// Items returns the render list in drawing order.
func (s *Scene) Items() []Renderable {
	return append([]Renderable(nil), s.items...)
}

// AddBox places a box with its top-left cell at position. The box must fit
// entirely on the canvas.
func (s *Scene) AddBox(width, height int, position core.Point, label string) (*Box, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidBoxSize)
	}
	cw, ch := s.canvas.Size()
	if position.X < 0 || position.Y < 0 || position.X+width > cw || position.Y+height > ch {
		return nil, fmt.Errorf("%dx%d at %v on %dx%d canvas: %w", width, height, position, cw, ch, ErrBoxDoesNotFit)
	}

	b := &Box{
		id:       s.newID(),
		scene:    s,
		width:    width,
		height:   height,
		position: position,
		label:    label,
		style:    s.style.Box,
	}
	s.items = append(s.items, b)
	return b, nil
}

// AddEdge connects two canvas cells. startDir and endDir must be
// core.Horizontal or core.Vertical.
func (s *Scene) AddEdge(start, end core.Point, startDir, endDir core.Direction) (*Edge, error) {
	return s.addEdge(endpoint{point: start}, endpoint{point: end}, startDir, endDir)
}

// AddEdgeBetweenBoxes connects from's bottom side to to's top side, leaving
// horizontally and arriving vertically.
func (s *Scene) AddEdgeBetweenBoxes(from, to *Box) (*Edge, error) {
	return s.AddEdgeBetweenBoxesWith(from, to, core.Horizontal, core.Vertical)
}

// AddEdgeBetweenBoxesWith allocates a Down anchor on from and an Up anchor on
// to. The edge leaves from the Down anchor itself and ends on the cell just
// above the Up anchor, or on the anchor when that cell is off the canvas.
func (s *Scene) AddEdgeBetweenBoxesWith(from, to *Box, startDir, endDir core.Direction) (*Edge, error) {
	for _, b := range []*Box{from, to} {
		if b == nil || b.scene != s {
			return nil, fmt.Errorf("%v: %w", b, ErrForeignBox)
		}
	}
	if err := checkIntents(startDir, endDir); err != nil {
		return nil, err
	}
	if err := from.checkRoom(core.Down); err != nil {
		return nil, err
	}
	if err := to.checkRoom(core.Up); err != nil {
		return nil, err
	}

	src, err := from.CreateAnchor(core.Down)
	if err != nil {
		return nil, err
	}
	dst, err := to.CreateAnchor(core.Up)
	if err != nil {
		return nil, err
	}
	return s.addEdge(endpoint{anchor: src}, endpoint{anchor: dst, outward: true}, startDir, endDir)
}

func (s *Scene) addEdge(start, end endpoint, startDir, endDir core.Direction) (*Edge, error) {
	if err := checkIntents(startDir, endDir); err != nil {
		return nil, err
	}

	e := &Edge{
		id:       s.newID(),
		start:    start,
		end:      end,
		startDir: startDir,
		endDir:   endDir,
		bounds:   s.canvas.Bounds(),
		renderer: s.paths,
		tracer:   s.tracer,
	}
	s.items = append(s.items, e)
	return e, nil
}

func checkIntents(startDir, endDir core.Direction) error {
	if !startDir.IsAxis() || !endDir.IsAxis() {
		return fmt.Errorf("edge directions %v/%v: %w", startDir, endDir, core.ErrInvalidDirection)
	}
	return nil
}

func (s *Scene) newID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Render clears the canvas and draws every entity in order. On failure the
// canvas is cleared again so no partial drawing is left behind.
func (s *Scene) Render() error {
	s.canvas.Clear()
	for _, item := range s.items {
		if err := item.Render(s.canvas); err != nil {
			s.canvas.Clear()
			return fmt.Errorf("render %v: %w", item, err)
		}
		s.tracer.Emit(trace.Event{
			Kind:    trace.KindRender,
			Subject: fmt.Sprint(item),
			Detail:  "drawn",
		})
	}
	return nil
}

// String returns the canvas text: every row followed by a newline.
func (s *Scene) String() string {
	return s.canvas.String()
}
