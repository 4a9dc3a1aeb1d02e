package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"termgraph/demo"
	"termgraph/terminal"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the scene to stdout",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	scene, err := demo.Build(s.cfg, s.script, s.opts...)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	if err := scene.Render(); err != nil {
		return fmt.Errorf("render scene: %w", err)
	}

	out := cmd.OutOrStdout()
	fill, _ := s.cfg.FillRune()
	z := terminal.NewColorizer(scene.Style(), fill, s.useColor(out))
	_, err = fmt.Fprint(out, z.Colorize(scene.String()))
	return err
}
