package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"termgraph/demo"
	"termgraph/terminal"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the scene full screen, one frame per script step",
		Args:  cobra.NoArgs,
		RunE:  runView,
	}
}

func runView(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	frames, err := demo.Frames(s.cfg, s.script, s.opts...)
	if err != nil {
		return fmt.Errorf("build frames: %w", err)
	}
	style, _ := s.cfg.RenderStyle()
	fill, _ := s.cfg.FillRune()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()

	v := terminal.NewViewer(screen, style, fill)
	v.SetFrames(frames...)
	return v.Run()
}
