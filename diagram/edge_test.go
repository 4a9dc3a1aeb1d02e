package diagram

import (
	"testing"

	"termgraph/core"
	"termgraph/trace"
)

func TestEdge_RoutesOnce(t *testing.T) {
	s := newScene(t, 10, 10, ' ')
	e, err := s.AddEdge(core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 4}, core.Horizontal, core.Horizontal)
	if err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	if e.Routed() {
		t.Fatal("edge routed before first use")
	}
	if _, ok := e.Path(); ok {
		t.Fatal("Path() reported a route before routing")
	}

	path, err := e.Route()
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if path.Length() != 9 || path.Turns() != 2 {
		t.Errorf("route has %d steps and %d turns, want 9 and 2", path.Length(), path.Turns())
	}
	if !e.Routed() {
		t.Error("Routed() = false after Route()")
	}

	again, _ := e.Route()
	if &again.Steps[0] != &path.Steps[0] {
		t.Error("second Route() recomputed the path")
	}
	if e.StartBox() != nil || e.EndBox() != nil {
		t.Error("bare edge reports attached boxes")
	}
	if sd, ed := e.Directions(); sd != core.Horizontal || ed != core.Horizontal {
		t.Errorf("Directions() = %v, %v", sd, ed)
	}
}

func TestEdge_FollowsAnchorsUntilRouted(t *testing.T) {
	s := newScene(t, 30, 14, ' ')
	src := addBox(t, s, 12, 3, core.Point{X: 0, Y: 0}, "src")
	left := addBox(t, s, 6, 3, core.Point{X: 0, Y: 10}, "l")
	right := addBox(t, s, 6, 3, core.Point{X: 20, Y: 10}, "r")

	first, err := s.AddEdgeBetweenBoxes(src, left)
	if err != nil {
		t.Fatalf("AddEdgeBetweenBoxes() error = %v", err)
	}
	// One anchor on the bottom of src: x = 12/2 = 6.
	if first.Start() != (core.Point{X: 6, Y: 2}) {
		t.Errorf("first edge start = %v, want (6,2)", first.Start())
	}

	second, err := s.AddEdgeBetweenBoxes(src, right)
	if err != nil {
		t.Fatalf("AddEdgeBetweenBoxes() error = %v", err)
	}
	// Two anchors: x = 4 and 8. The unrouted first edge moves with its anchor.
	if first.Start() != (core.Point{X: 4, Y: 2}) || second.Start() != (core.Point{X: 8, Y: 2}) {
		t.Errorf("starts = %v, %v; want (4,2), (8,2)", first.Start(), second.Start())
	}
	if first.StartBox() != src || first.EndBox() != left {
		t.Error("first edge boxes not recorded")
	}

	path, err := first.Route()
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if _, err := s.AddEdgeBetweenBoxes(src, right); err != nil {
		t.Fatalf("AddEdgeBetweenBoxes() error = %v", err)
	}
	// The anchor moved again but the routed path stays put.
	if first.Start() == path.First().Point {
		t.Errorf("anchor did not move: start still %v", first.Start())
	}
	kept, _ := first.Path()
	if kept.First().Point != (core.Point{X: 4, Y: 2}) {
		t.Errorf("routed path start = %v, want (4,2)", kept.First().Point)
	}
}

func TestEdge_ZeroLength(t *testing.T) {
	s := newScene(t, 5, 5, '.')
	p := core.Point{X: 2, Y: 2}
	if _, err := s.AddEdge(p, p, core.Horizontal, core.Vertical); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := s.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := s.String(); got != lines(".....", ".....", ".....", ".....", ".....") {
		t.Errorf("zero-length edge drew something:\n%s", got)
	}
}

func TestEdge_TracesRouteAndRender(t *testing.T) {
	rec := &trace.Recorder{}
	s := newScene(t, 10, 10, ' ', WithTracer(rec))
	if _, err := s.AddEdge(core.Point{X: 1, Y: 1}, core.Point{X: 5, Y: 3}, core.Horizontal, core.Vertical); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := s.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	routes := rec.Filter(trace.KindRoute)
	if len(routes) != 1 {
		t.Fatalf("recorded %d route events, want 1", len(routes))
	}
	if want := "L (1,1)->(5,3), 7 steps, 1 turns"; routes[0].Detail != want {
		t.Errorf("route detail = %q, want %q", routes[0].Detail, want)
	}

	renders := rec.Filter(trace.KindRender)
	if len(renders) != 1 || renders[0].Subject != "edge#0" {
		t.Errorf("render events = %+v", renders)
	}
}
