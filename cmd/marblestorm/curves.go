package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcadekit/marblestorm/internal/sim"
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "List available track shapes",
	Long:  `Shows all track shapes that can be used with 'play --curve'.`,
	Run:   runCurves,
}

// curveBlurbs gives a one-line description per track shape.
var curveBlurbs = map[string]string{
	string(sim.CurveCircle):  "A near-closed ring around the core",
	string(sim.CurveEllipse): "A stretched ring, longer straights",
	string(sim.CurveFigure8): "Two lobes crossing at the center",
	string(sim.CurveSpiral):  "Winds inward toward the core",
	string(sim.CurveSine):    "A wave sweeping across the screen",
	string(sim.CurveSerpent): "A wave climbing top to bottom",
	string(sim.CurveRose3):   "Three-petaled rose curve",
	string(sim.CurveRose4):   "Four-petaled rose curve",
}

func runCurves(cmd *cobra.Command, args []string) {
	names := sim.CurveNames()

	fmt.Println("Available track shapes:")
	fmt.Println()

	maxLen := 0
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}

	for _, name := range names {
		fmt.Printf("  %-*s  %s\n", maxLen, name, curveBlurbs[name])
	}

	fmt.Println()
	fmt.Println("Run 'marblestorm play --curve <name>' to override the track shape.")
}
