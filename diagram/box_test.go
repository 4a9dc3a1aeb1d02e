package diagram

import (
	"errors"
	"testing"

	"termgraph/core"
	"termgraph/trace"
)

func TestBox_Geometry(t *testing.T) {
	s := newScene(t, 30, 12, ' ')
	b := addBox(t, s, 9, 5, core.Point{X: 3, Y: 1}, "hello")

	if b.Center() != (core.Point{X: 4, Y: 2}) {
		t.Errorf("Center() = %v, want (4,2)", b.Center())
	}

	corners := map[core.Corner]core.Point{
		core.TopLeft:     {X: 0, Y: 0},
		core.TopRight:    {X: 8, Y: 0},
		core.BottomLeft:  {X: 0, Y: 4},
		core.BottomRight: {X: 8, Y: 4},
	}
	for c, want := range corners {
		if got := b.Corner(c); got != want {
			t.Errorf("Corner(%v) = %v, want %v", c, got, want)
		}
	}

	if got := b.ToCanvas(b.Corner(core.BottomRight)); got != (core.Point{X: 11, Y: 5}) {
		t.Errorf("ToCanvas(BottomRight) = %v, want (11,5)", got)
	}
}

func TestBox_LabelPosition(t *testing.T) {
	s := newScene(t, 30, 12, ' ')
	b := addBox(t, s, 11, 5, core.Point{}, "")

	tests := []struct {
		label string
		want  core.Point
	}{
		{"", core.Point{X: 5, Y: 2}},
		{"a", core.Point{X: 5, Y: 2}},
		{"ab", core.Point{X: 4, Y: 2}},
		{"world!", core.Point{X: 2, Y: 2}},
		{"hello", core.Point{X: 3, Y: 2}},
		{"世界", core.Point{X: 3, Y: 2}},
		{"much too long label", core.Point{X: -4, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := b.LabelPosition(tt.label); got != tt.want {
				t.Errorf("LabelPosition(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestBox_CreateAnchorRedistributes(t *testing.T) {
	s := newScene(t, 30, 12, ' ')
	b := addBox(t, s, 12, 6, core.Point{X: 2, Y: 3}, "")

	first, err := b.CreateAnchor(core.Down)
	if err != nil {
		t.Fatalf("CreateAnchor() error = %v", err)
	}
	if first.Offset() != (core.Point{X: 6, Y: 5}) {
		t.Errorf("single anchor at %v, want (6,5)", first.Offset())
	}

	second, err := b.CreateAnchor(core.Down)
	if err != nil {
		t.Fatalf("CreateAnchor() error = %v", err)
	}
	if first.Offset() != (core.Point{X: 4, Y: 5}) || second.Offset() != (core.Point{X: 8, Y: 5}) {
		t.Errorf("anchors at %v, %v; want (4,5), (8,5)", first.Offset(), second.Offset())
	}
	if got := b.Anchors(core.Down); len(got) != 2 || got[1] != second {
		t.Errorf("Anchors(Down) = %v, want [first second]", got)
	}
	if first.Position() != (core.Point{X: 6, Y: 8}) {
		t.Errorf("first anchor canvas position = %v, want (6,8)", first.Position())
	}
	if first.Outside() != (core.Point{X: 6, Y: 9}) {
		t.Errorf("first anchor outside cell = %v, want (6,9)", first.Outside())
	}
}

func TestBox_AnchorSides(t *testing.T) {
	s := newScene(t, 30, 12, ' ')
	b := addBox(t, s, 10, 7, core.Point{X: 1, Y: 1}, "")

	tests := []struct {
		side    core.Direction
		offset  core.Point
		outside core.Point
	}{
		{core.Up, core.Point{X: 5, Y: 0}, core.Point{X: 6, Y: 0}},
		{core.Down, core.Point{X: 5, Y: 6}, core.Point{X: 6, Y: 8}},
		{core.Left, core.Point{X: 0, Y: 3}, core.Point{X: 0, Y: 4}},
		{core.Right, core.Point{X: 9, Y: 3}, core.Point{X: 11, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			a, err := b.CreateAnchor(tt.side)
			if err != nil {
				t.Fatalf("CreateAnchor(%v) error = %v", tt.side, err)
			}
			if a.Side() != tt.side || a.Box() != b {
				t.Errorf("anchor side/box = %v/%v", a.Side(), a.Box())
			}
			if a.Offset() != tt.offset {
				t.Errorf("Offset() = %v, want %v", a.Offset(), tt.offset)
			}
			if a.Outside() != tt.outside {
				t.Errorf("Outside() = %v, want %v", a.Outside(), tt.outside)
			}
		})
	}

	if _, err := b.CreateAnchor(core.Horizontal); !errors.Is(err, ErrInvalidAnchorSide) {
		t.Errorf("CreateAnchor(Horizontal) error = %v, want ErrInvalidAnchorSide", err)
	}
	if b.Anchors(core.Vertical) != nil {
		t.Error("Anchors(Vertical) should be nil")
	}
}

// TestBox_AnchorSpacing checks that k anchors on a side of width W are
// strictly increasing and stay inside [1, W-2] for every k <= W-2.
func TestBox_AnchorSpacing(t *testing.T) {
	for width := 3; width <= 16; width++ {
		s := newScene(t, 20, 5, ' ')
		b := addBox(t, s, width, 3, core.Point{}, "")

		for k := 1; k <= width-2; k++ {
			if _, err := b.CreateAnchor(core.Down); err != nil {
				t.Fatalf("width %d: anchor %d error = %v", width, k, err)
			}

			anchors := b.Anchors(core.Down)
			for i, a := range anchors {
				x := a.Offset().X
				if x < 1 || x > width-2 {
					t.Errorf("width %d, k %d: anchor %d at x=%d outside [1,%d]", width, k, i, x, width-2)
				}
				if i > 0 && x <= anchors[i-1].Offset().X {
					t.Errorf("width %d, k %d: anchor %d at x=%d not after x=%d", width, k, i, x, anchors[i-1].Offset().X)
				}
				if a.Offset().Y != 2 {
					t.Errorf("width %d: anchor %d on row %d, want 2", width, i, a.Offset().Y)
				}
			}
		}
	}
}

func TestBox_SideFull(t *testing.T) {
	s := newScene(t, 10, 10, ' ')
	b := addBox(t, s, 4, 4, core.Point{}, "")

	for i := 0; i < 3; i++ {
		if _, err := b.CreateAnchor(core.Up); err != nil {
			t.Fatalf("anchor %d error = %v", i, err)
		}
	}
	if _, err := b.CreateAnchor(core.Up); !errors.Is(err, ErrSideFull) {
		t.Errorf("fourth anchor error = %v, want ErrSideFull", err)
	}
	if len(b.Anchors(core.Up)) != 3 {
		t.Errorf("refused anchor was kept: %d anchors", len(b.Anchors(core.Up)))
	}
}

func TestBox_TracesAnchors(t *testing.T) {
	rec := &trace.Recorder{}
	s := newScene(t, 20, 10, ' ', WithTracer(rec))
	b := addBox(t, s, 9, 3, core.Point{X: 1, Y: 1}, "")

	if _, err := b.CreateAnchor(core.Down); err != nil {
		t.Fatalf("CreateAnchor() error = %v", err)
	}
	if _, err := b.CreateAnchor(core.Down); err != nil {
		t.Fatalf("CreateAnchor() error = %v", err)
	}

	events := rec.Filter(trace.KindAnchor)
	// One event for the first anchor, then two for the redistribution.
	if len(events) != 3 {
		t.Fatalf("recorded %d anchor events, want 3: %v", len(events), events)
	}
	if events[2].Subject != b.String() || events[2].Detail != "Down[2/2] at (7,3)" {
		t.Errorf("last event = %+v", events[2])
	}
}
