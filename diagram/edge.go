package diagram

import (
	"fmt"

	"termgraph/canvas"
	"termgraph/core"
	"termgraph/pathfinding"
	"termgraph/render"
	"termgraph/trace"
)

// endpoint is either a fixed canvas cell or an anchor. An outward endpoint
// sits one cell beyond its anchor when that cell is inside bounds.
type endpoint struct {
	point   core.Point
	anchor  *Anchor
	outward bool
}

func (e endpoint) resolve(bounds core.Bounds) core.Point {
	if e.anchor == nil {
		return e.point
	}
	if e.outward {
		if p := e.anchor.Outside(); bounds.Contains(p) {
			return p
		}
	}
	return e.anchor.Position()
}

func (e endpoint) box() *Box {
	if e.anchor != nil {
		return e.anchor.box
	}
	return nil
}

// Edge is an orthogonal connector between two points.
//
// An edge starts unrouted. The first call to Route (or Render) computes the
// path from the endpoints as they are at that moment; after that the path
// never changes. Anchored endpoints follow anchor redistribution until then.
type Edge struct {
	id       int
	start    endpoint
	end      endpoint
	startDir core.Direction
	endDir   core.Direction
	bounds   core.Bounds
	renderer *render.PathRenderer
	tracer   trace.Tracer

	routed bool
	path   core.Path
}

// ID returns the scene-unique identifier of the edge.
func (e *Edge) ID() int { return e.id }

// String implements fmt.Stringer.
func (e *Edge) String() string {
	return fmt.Sprintf("edge#%d", e.id)
}

// Start returns the current start cell.
func (e *Edge) Start() core.Point { return e.start.resolve(e.bounds) }

// End returns the current end cell.
func (e *Edge) End() core.Point { return e.end.resolve(e.bounds) }

// StartBox returns the box the edge leaves from, or nil.
func (e *Edge) StartBox() *Box { return e.start.box() }

// EndBox returns the box the edge points into, or nil.
func (e *Edge) EndBox() *Box { return e.end.box() }

// StartAnchor returns the anchor the edge leaves from, or nil.
func (e *Edge) StartAnchor() *Anchor { return e.start.anchor }

// EndAnchor returns the anchor the edge points into, or nil.
func (e *Edge) EndAnchor() *Anchor { return e.end.anchor }

// Directions returns the start and end axis intents.
func (e *Edge) Directions() (start, end core.Direction) {
	return e.startDir, e.endDir
}

// Routed reports whether the path has been computed.
func (e *Edge) Routed() bool { return e.routed }

// Path returns the computed path and whether the edge has been routed.
func (e *Edge) Path() (core.Path, bool) {
	return e.path, e.routed
}

// Route computes the path on first use and returns it.
func (e *Edge) Route() (core.Path, error) {
	if e.routed {
		return e.path, nil
	}

	start, end := e.Start(), e.End()
	path, err := pathfinding.ManhattanPath(start, end, e.startDir, e.endDir, e.bounds)
	if err != nil {
		return core.Path{}, fmt.Errorf("route %v %v->%v: %w", e, start, end, err)
	}

	e.path = path
	e.routed = true
	e.tracer.Emit(trace.Event{
		Kind:    trace.KindRoute,
		Subject: e.String(),
		Detail: fmt.Sprintf("%s %v->%v, %d steps, %d turns",
			pathfinding.ShapeFor(e.startDir, e.endDir), start, end, path.Length(), path.Turns()),
	})
	return path, nil
}

// Render routes the edge if needed and rasterizes it.
func (e *Edge) Render(c *canvas.Canvas) error {
	path, err := e.Route()
	if err != nil {
		return err
	}
	return e.renderer.DrawPath(c, path)
}
