// Package pathfinding computes orthogonal routes between two anchor points.
package pathfinding

import (
	"errors"
	"fmt"

	"termgraph/core"
	"termgraph/geometry"
)

// ErrOutOfBounds is returned when a route would step off the canvas.
var ErrOutOfBounds = errors.New("route leaves the canvas")

// Shape names the routing strategy chosen for a pair of axis intents.
type Shape int

const (
	// ShapeL travels fully along the start axis, then fully along the other.
	ShapeL Shape = iota
	// ShapeZ jogs through the midpoint: start axis to the midpoint, the other
	// axis all the way, then the start axis again to the end.
	ShapeZ
)

// String returns the string representation of a Shape.
func (s Shape) String() string {
	switch s {
	case ShapeL:
		return "L"
	case ShapeZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// ShapeFor returns the route shape used for the given axis intents.
func ShapeFor(startDir, endDir core.Direction) Shape {
	if startDir == endDir {
		return ShapeZ
	}
	return ShapeL
}

// ManhattanPath returns the unit-step route from start to end.
//
// startDir and endDir must be Horizontal or Vertical. Differing intents give
// an L route with one turn; equal intents give a Z route centred on the
// midpoint of start and end with two turns. The origin step carries startDir
// as its direction, every later step the resolved direction of the move that
// reached it. Every step must lie inside bounds; the route never detours.
func ManhattanPath(start, end core.Point, startDir, endDir core.Direction, bounds core.Bounds) (core.Path, error) {
	if !startDir.IsAxis() {
		return core.Path{}, fmt.Errorf("start direction %v: %w", startDir, core.ErrInvalidDirection)
	}
	if !endDir.IsAxis() {
		return core.Path{}, fmt.Errorf("end direction %v: %w", endDir, core.ErrInvalidDirection)
	}
	if !bounds.Contains(start) {
		return core.Path{}, fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}

	r := &walker{
		bounds: bounds,
		steps:  []core.Step{{Point: start, Direction: startDir}},
	}

	switch ShapeFor(startDir, endDir) {
	case ShapeL:
		r.advance(startDir, end)
		r.advance(endDir, end)
	case ShapeZ:
		mid := core.Midpoint(start, end)
		cross, err := startDir.Opposite()
		if err != nil {
			return core.Path{}, err
		}
		back, err := endDir.Opposite()
		if err != nil {
			return core.Path{}, err
		}
		r.advance(startDir, mid)
		r.advance(cross, mid)
		r.advance(back, end)
		r.advance(endDir, end)
	}

	if r.err != nil {
		return core.Path{}, r.err
	}
	return core.Path{Steps: r.steps}, nil
}

// walker accumulates steps and stops at the first error.
type walker struct {
	bounds core.Bounds
	steps  []core.Step
	err    error
}

func (w *walker) current() core.Point {
	return w.steps[len(w.steps)-1].Point
}

// advance moves along axis until the walker's coordinate on that axis
// matches target's.
func (w *walker) advance(axis core.Direction, target core.Point) {
	for w.err == nil {
		cur := w.current()

		var unit core.Point
		if axis == core.Horizontal {
			unit.X = geometry.Sign(target.X - cur.X)
		} else {
			unit.Y = geometry.Sign(target.Y - cur.Y)
		}
		if unit == (core.Point{}) {
			return
		}

		next := cur.Add(unit)
		if !w.bounds.Contains(next) {
			w.err = fmt.Errorf("step %d to %v: %w", len(w.steps), next, ErrOutOfBounds)
			return
		}

		dir, err := core.ResolveDirection(unit)
		if err != nil {
			w.err = err
			return
		}
		w.steps = append(w.steps, core.Step{Point: next, Direction: dir})
	}
}
