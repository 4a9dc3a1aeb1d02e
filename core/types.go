// Package core contains the fundamental types used throughout the termgraph renderer.
package core

import (
	"errors"
	"fmt"

	"termgraph/geometry"
)

// Common errors
var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrDivideByZero     = errors.New("division by zero")
)

// Point represents a 2D coordinate on the canvas.
// Origin (0,0) is top-left, X grows rightward and Y grows downward.
// Points are values: every operation returns a new Point.
type Point struct {
	X, Y int
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// AddScalar adds n to both components.
func (p Point) AddScalar(n int) Point {
	return Point{X: p.X + n, Y: p.Y + n}
}

// SubScalar subtracts n from both components.
func (p Point) SubScalar(n int) Point {
	return Point{X: p.X - n, Y: p.Y - n}
}

// Mul multiplies element-wise.
func (p Point) Mul(o Point) Point {
	return Point{X: p.X * o.X, Y: p.Y * o.Y}
}

// MulScalar multiplies both components by n.
func (p Point) MulScalar(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Div floor-divides element-wise.
func (p Point) Div(o Point) (Point, error) {
	if o.X == 0 || o.Y == 0 {
		return Point{}, fmt.Errorf("%v / %v: %w", p, o, ErrDivideByZero)
	}
	return Point{X: geometry.FloorDiv(p.X, o.X), Y: geometry.FloorDiv(p.Y, o.Y)}, nil
}

// DivScalar floor-divides both components by n.
func (p Point) DivScalar(n int) (Point, error) {
	return p.Div(Point{X: n, Y: n})
}

// Norm collapses every nonzero component to ±1.
func (p Point) Norm() Point {
	return Point{X: geometry.Sign(p.X), Y: geometry.Sign(p.Y)}
}

// ManhattanDistance returns |dx|+|dy| between p and o.
func (p Point) ManhattanDistance(o Point) int {
	return geometry.ManhattanDistance(p.X, p.Y, o.X, o.Y)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Midpoint returns the element-wise average of a and b, floored.
// The result is symmetric in its arguments; for odd sums it leans toward
// the smaller coordinate rather than sitting on the exact centre.
func Midpoint(a, b Point) Point {
	return Point{
		X: geometry.FloorDiv(a.X+b.X, 2),
		Y: geometry.FloorDiv(a.Y+b.Y, 2),
	}
}

// Direction is either a resolved compass direction (Up, Down, Left, Right)
// or an axis intent (Horizontal, Vertical).
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Horizontal
	Vertical
)

// Sides lists the four resolved directions in index order.
var Sides = [4]Direction{Up, Down, Left, Right}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// IsAxis reports whether d is Horizontal or Vertical.
func (d Direction) IsAxis() bool {
	return d == Horizontal || d == Vertical
}

// IsResolved reports whether d is one of Up, Down, Left or Right.
func (d Direction) IsResolved() bool {
	return d >= Up && d <= Right
}

// IsHorizontal reports whether d travels along the x axis.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right || d == Horizontal
}

// IsVertical reports whether d travels along the y axis.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down || d == Vertical
}

// Opposite returns the opposite direction.
// Up/Down, Left/Right and Horizontal/Vertical swap; anything else is an error.
func (d Direction) Opposite() (Direction, error) {
	switch d {
	case Up:
		return Down, nil
	case Down:
		return Up, nil
	case Left:
		return Right, nil
	case Right:
		return Left, nil
	case Horizontal:
		return Vertical, nil
	case Vertical:
		return Horizontal, nil
	default:
		return d, fmt.Errorf("opposite of %d: %w", int(d), ErrInvalidDirection)
	}
}

// Unit returns the unit displacement of a resolved direction.
func (d Direction) Unit() (Point, error) {
	switch d {
	case Up:
		return Point{0, -1}, nil
	case Down:
		return Point{0, 1}, nil
	case Left:
		return Point{-1, 0}, nil
	case Right:
		return Point{1, 0}, nil
	default:
		return Point{}, fmt.Errorf("unit of %v: %w", d, ErrInvalidDirection)
	}
}

// ResolveDirection maps a unit displacement to Up, Down, Left or Right.
// Zero, diagonal and multi-cell deltas are rejected.
func ResolveDirection(delta Point) (Direction, error) {
	switch delta {
	case Point{1, 0}:
		return Right, nil
	case Point{-1, 0}:
		return Left, nil
	case Point{0, 1}:
		return Down, nil
	case Point{0, -1}:
		return Up, nil
	default:
		return Horizontal, fmt.Errorf("delta %v is not a unit move: %w", delta, ErrInvalidDirection)
	}
}

// Corner names one of the four corners of a rectangle.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns the string representation of a Corner.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Step is one cell of a routed path. Direction is resolved from the move
// that reached it, except for the first step which carries the caller's
// axis intent.
type Step struct {
	Point     Point
	Direction Direction
}

// Path represents a route through the canvas as an ordered list of unit steps.
type Path struct {
	Steps []Step
}

// Length returns the number of steps in the path.
func (p Path) Length() int {
	return len(p.Steps)
}

// IsEmpty returns true if the path has no steps.
func (p Path) IsEmpty() bool {
	return len(p.Steps) == 0
}

// First returns the origin step. The path must not be empty.
func (p Path) First() Step {
	return p.Steps[0]
}

// Last returns the terminal step. The path must not be empty.
func (p Path) Last() Step {
	return p.Steps[len(p.Steps)-1]
}

// Points returns the cells visited by the path in order.
func (p Path) Points() []Point {
	points := make([]Point, len(p.Steps))
	for i, s := range p.Steps {
		points[i] = s.Point
	}
	return points
}

// Turns counts the direction changes between resolved steps.
// The axis intent carried by the origin step never counts as a turn.
func (p Path) Turns() int {
	turns := 0
	for i := 1; i < len(p.Steps); i++ {
		prev, cur := p.Steps[i-1].Direction, p.Steps[i].Direction
		if prev.IsResolved() && cur.IsResolved() && prev != cur {
			turns++
		}
	}
	return turns
}

// Bounds represents a rectangular area. Max is exclusive.
type Bounds struct {
	Min, Max Point
}

// NewBounds returns the bounds of a width x height grid anchored at the origin.
func NewBounds(width, height int) Bounds {
	return Bounds{Max: Point{X: width, Y: height}}
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}
