// Package terminal puts rendered scenes on a terminal, either as a
// full-screen tcell view or as colourised text.
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"termgraph/render"
)

// Viewer shows a sequence of rendered frames full screen. The last frame is
// shown first; Left/Right step through the others.
type Viewer struct {
	screen tcell.Screen
	style  render.Style
	fill   rune
	frames []string
	index  int
	styles map[render.GlyphClass]tcell.Style
}

// NewViewer creates a viewer on an initialised screen. The caller owns the
// screen and must call Fini on it.
func NewViewer(screen tcell.Screen, style render.Style, fill rune) *Viewer {
	return &Viewer{
		screen: screen,
		style:  style,
		fill:   fill,
		styles: map[render.GlyphClass]tcell.Style{
			render.ClassLine:  tcell.StyleDefault.Foreground(tcell.ColorTeal),
			render.ClassArrow: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
			render.ClassText:  tcell.StyleDefault.Bold(true),
			render.ClassBlank: tcell.StyleDefault.Dim(true),
		},
	}
}

// SetFrames replaces the frames and selects the last one.
func (v *Viewer) SetFrames(frames ...string) {
	v.frames = frames
	v.index = len(frames) - 1
	if v.index < 0 {
		v.index = 0
	}
}

// Frame returns the index of the frame on screen.
func (v *Viewer) Frame() int {
	return v.index
}

// Draw paints the current frame and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	_, height := v.screen.Size()

	if len(v.frames) > 0 {
		rows := strings.Split(strings.TrimSuffix(v.frames[v.index], "\n"), "\n")
		for y, row := range rows {
			if y >= height-1 {
				break
			}
			v.drawRow(y, row)
		}
	}

	status := fmt.Sprintf(" frame %d/%d  ←/→ step  q quit ", v.index+1, len(v.frames))
	x := 0
	for _, r := range status {
		v.screen.SetContent(x, height-1, r, nil, tcell.StyleDefault.Reverse(true))
		x += runewidth.RuneWidth(r)
	}
	v.screen.Show()
}

func (v *Viewer) drawRow(y int, row string) {
	x := 0
	for _, r := range row {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		v.screen.SetContent(x, y, r, nil, v.styles[v.style.Classify(r, v.fill)])
		x += w
	}
}

// HandleEvent reacts to one event and reports whether the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			v.step(-1)
		case tcell.KeyRight:
			v.step(1)
		case tcell.KeyHome:
			v.index = 0
			v.Draw()
		case tcell.KeyEnd:
			v.SetFrames(v.frames...)
			v.Draw()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'h':
				v.step(-1)
			case 'l', ' ':
				v.step(1)
			}
		}
	}
	return false
}

func (v *Viewer) step(delta int) {
	next := v.index + delta
	if next < 0 || next >= len(v.frames) {
		return
	}
	v.index = next
	v.Draw()
}

// Run draws the current frame and processes events until the user quits or
// the screen is finalised.
func (v *Viewer) Run() error {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
	}
}
