package render

// GlyphClass groups rendered cells for colouring.
type GlyphClass int

const (
	ClassText GlyphClass = iota
	ClassLine
	ClassArrow
	ClassBlank
)

// Classify reports which part of a diagram r belongs to under style s.
// fill is the canvas background glyph.
func (s Style) Classify(r, fill rune) GlyphClass {
	switch r {
	case ' ', fill:
		return ClassBlank
	case s.Arrows.Up, s.Arrows.Down, s.Arrows.Left, s.Arrows.Right:
		return ClassArrow
	case s.Box.Horizontal, s.Box.Vertical,
		s.Box.TopLeft, s.Box.TopRight, s.Box.BottomLeft, s.Box.BottomRight:
		return ClassLine
	default:
		return ClassText
	}
}
