package render

import "termgraph/core"

// BoxStyle defines the characters used to draw a box.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Corner returns the glyph for the named corner, or 0 for an unknown corner.
func (b BoxStyle) Corner(c core.Corner) rune {
	switch c {
	case core.TopLeft:
		return b.TopLeft
	case core.TopRight:
		return b.TopRight
	case core.BottomLeft:
		return b.BottomLeft
	case core.BottomRight:
		return b.BottomRight
	default:
		return 0
	}
}

// ArrowStyle defines the characters used for arrows in different directions.
type ArrowStyle struct {
	Right rune
	Left  rune
	Up    rune
	Down  rune
}

// Turn is a change of travel direction between two consecutive path steps.
type Turn struct {
	From, To core.Direction
}

// CornerTable maps a turn to the corner glyph drawn on the cell where it happens.
type CornerTable map[Turn]core.Corner

// TableCorners is the fixed turn table. It differs from GeometricCorners
// only for Up->Right and Up->Left.
var TableCorners = CornerTable{
	{core.Right, core.Down}: core.TopRight,
	{core.Right, core.Up}:   core.BottomRight,
	{core.Left, core.Down}:  core.TopLeft,
	{core.Left, core.Up}:    core.BottomLeft,
	{core.Down, core.Right}: core.BottomLeft,
	{core.Down, core.Left}:  core.BottomRight,
	{core.Up, core.Right}:   core.TopRight,
	{core.Up, core.Left}:    core.TopLeft,
}

// GeometricCorners picks the corner whose arms join the incoming and outgoing cells.
var GeometricCorners = CornerTable{
	{core.Right, core.Down}: core.TopRight,
	{core.Right, core.Up}:   core.BottomRight,
	{core.Left, core.Down}:  core.TopLeft,
	{core.Left, core.Up}:    core.BottomLeft,
	{core.Down, core.Right}: core.BottomLeft,
	{core.Down, core.Left}:  core.BottomRight,
	{core.Up, core.Right}:   core.TopLeft,
	{core.Up, core.Left}:    core.TopRight,
}

// Style is the full glyph set used to draw boxes and edges.
type Style struct {
	Name    string
	Box     BoxStyle
	Arrows  ArrowStyle
	Corners CornerTable

	// DirectionalArrows points the arrowhead along the final travel
	// direction instead of always drawing Arrows.Down.
	DirectionalArrows bool
}

// Predefined styles
var (
	// UnicodeStyle uses light box-drawing characters
	UnicodeStyle = Style{
		Name: "unicode",
		Box: BoxStyle{
			TopLeft:     '┌',
			TopRight:    '┐',
			BottomLeft:  '└',
			BottomRight: '┘',
			Horizontal:  '─',
			Vertical:    '│',
		},
		Arrows: ArrowStyle{
			Right: '▶',
			Left:  '◀',
			Up:    '▲',
			Down:  '▼',
		},
		Corners: TableCorners,
	}

	// ASCIIStyle uses ASCII characters
	ASCIIStyle = Style{
		Name: "ascii",
		Box: BoxStyle{
			TopLeft:     '+',
			TopRight:    '+',
			BottomLeft:  '+',
			BottomRight: '+',
			Horizontal:  '-',
			Vertical:    '|',
		},
		Arrows: ArrowStyle{
			Right: '>',
			Left:  '<',
			Up:    '^',
			Down:  'v',
		},
		Corners: TableCorners,
	}
)

// Styles defines the available glyph sets by name.
var Styles = map[string]Style{
	UnicodeStyle.Name: UnicodeStyle,
	ASCIIStyle.Name:   ASCIIStyle,
}

// GetStyle returns the Style for a given name, with fallback to UnicodeStyle.
func GetStyle(name string) (Style, bool) {
	if style, ok := Styles[name]; ok {
		return style, true
	}
	return UnicodeStyle, false
}

// LineGlyph returns the straight-line glyph for a step travelling in d.
func (s Style) LineGlyph(d core.Direction) rune {
	if d.IsVertical() {
		return s.Box.Vertical
	}
	return s.Box.Horizontal
}

// CornerGlyph returns the glyph for a turn, or false if the pair is not a turn.
func (s Style) CornerGlyph(from, to core.Direction) (rune, bool) {
	table := s.Corners
	if table == nil {
		table = TableCorners
	}
	corner, ok := table[Turn{From: from, To: to}]
	if !ok {
		return 0, false
	}
	glyph := s.Box.Corner(corner)
	return glyph, glyph != 0
}

// ArrowGlyph returns the arrowhead drawn on the last cell of an edge
// whose final step travels in d.
func (s Style) ArrowGlyph(d core.Direction) rune {
	if !s.DirectionalArrows {
		return s.Arrows.Down
	}
	switch d {
	case core.Up:
		return s.Arrows.Up
	case core.Left:
		return s.Arrows.Left
	case core.Right:
		return s.Arrows.Right
	default:
		return s.Arrows.Down
	}
}
