// Package demo builds sample scenes from small JSON scripts.
package demo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"termgraph/config"
	"termgraph/core"
	"termgraph/diagram"
)

// Step kinds.
const (
	StepBox  = "box"
	StepEdge = "edge"
)

// ErrUnknownBox is returned when an edge step names a box no earlier step created.
var ErrUnknownBox = errors.New("unknown box")

// Step is a single scene-building action.
type Step struct {
	Type   string `json:"type"`             // "box" or "edge"
	Name   string `json:"name,omitempty"`   // box handle, defaults to Label
	Label  string `json:"label,omitempty"`  // box text
	X      int    `json:"x,omitempty"`      // box position
	Y      int    `json:"y,omitempty"`      // box position
	Width  int    `json:"width,omitempty"`  // box size
	Height int    `json:"height,omitempty"` // box size
	From   string `json:"from,omitempty"`   // edge source box
	To     string `json:"to,omitempty"`     // edge destination box
}

// Script is an ordered list of steps.
type Script struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

// Default returns the three-box sample scene.
func Default() *Script {
	return &Script{
		Name:        "hello",
		Description: "Three boxes joined by two edges",
		Steps: []Step{
			{Type: StepBox, Label: "hello", X: 3, Y: 1, Width: 9, Height: 5},
			{Type: StepBox, Label: "world!", X: 17, Y: 3, Width: 11, Height: 5},
			{Type: StepBox, Label: "ASCII!", X: 3, Y: 6, Width: 11, Height: 5},
			{Type: StepEdge, From: "hello", To: "world!"},
			{Type: StepEdge, From: "world!", To: "ASCII!"},
		},
	}
}

// LoadScript reads a script from a JSON file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a JSON script.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse demo script: %w", err)
	}
	for i, step := range script.Steps {
		switch step.Type {
		case StepBox, StepEdge:
		default:
			return nil, fmt.Errorf("step %d: unknown type %q", i, step.Type)
		}
	}
	return &script, nil
}

// Build creates a scene sized and styled by cfg and applies every step.
func Build(cfg config.Config, script *Script, opts ...diagram.Option) (*diagram.Scene, error) {
	return build(cfg, script.Steps, opts)
}

// Frames renders the scene after each step. Each frame is built from scratch
// so earlier frames do not pin edges to anchors that later steps move.
func Frames(cfg config.Config, script *Script, opts ...diagram.Option) ([]string, error) {
	frames := make([]string, 0, len(script.Steps))
	for i := range script.Steps {
		scene, err := build(cfg, script.Steps[:i+1], opts)
		if err != nil {
			return nil, err
		}
		if err := scene.Render(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		frames = append(frames, scene.String())
	}
	return frames, nil
}

func build(cfg config.Config, steps []Step, opts []diagram.Option) (*diagram.Scene, error) {
	width, height, err := cfg.Size()
	if err != nil {
		return nil, err
	}
	fill, err := cfg.FillRune()
	if err != nil {
		return nil, err
	}
	style, err := cfg.RenderStyle()
	if err != nil {
		return nil, err
	}

	scene, err := diagram.NewScene(width, height, fill, append([]diagram.Option{diagram.WithStyle(style)}, opts...)...)
	if err != nil {
		return nil, err
	}

	boxes := make(map[string]*diagram.Box)
	for i, step := range steps {
		switch step.Type {
		case StepBox:
			box, err := scene.AddBox(step.Width, step.Height, core.Point{X: step.X, Y: step.Y}, step.Label)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			name := step.Name
			if name == "" {
				name = step.Label
			}
			boxes[name] = box
		case StepEdge:
			from, ok := boxes[step.From]
			if !ok {
				return nil, fmt.Errorf("step %d: %q: %w", i, step.From, ErrUnknownBox)
			}
			to, ok := boxes[step.To]
			if !ok {
				return nil, fmt.Errorf("step %d: %q: %w", i, step.To, ErrUnknownBox)
			}
			if _, err := scene.AddEdgeBetweenBoxes(from, to); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("step %d: unknown type %q", i, step.Type)
		}
	}
	return scene, nil
}

// GenerateExample returns the default script as indented JSON.
func GenerateExample() string {
	// Script holds only strings and ints, so marshalling cannot fail.
	data, _ := json.MarshalIndent(Default(), "", "  ")
	return string(data)
}
