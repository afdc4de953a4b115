package marble

import "github.com/arcadekit/marblestorm/internal/sim"

// LevelDef describes one campaign stage before difficulty scaling.
type LevelDef struct {
	Name            string
	Curve           sim.CurveType
	PaletteSize     int
	SpawnCount      int
	SpeedMultiplier float64
}

// Campaign levels in play order. Endless mode cycles through the same
// catalog with a growing speed bonus per cycle.
var levels = []LevelDef{
	{Name: "Garden Loop", Curve: sim.CurveCircle, PaletteSize: 4, SpawnCount: 60, SpeedMultiplier: 1.0},
	{Name: "Long Meadow", Curve: sim.CurveSine, PaletteSize: 4, SpawnCount: 70, SpeedMultiplier: 1.05},
	{Name: "Twin Petals", Curve: sim.CurveFigure8, PaletteSize: 5, SpawnCount: 80, SpeedMultiplier: 1.1},
	{Name: "Ellipse Run", Curve: sim.CurveEllipse, PaletteSize: 5, SpawnCount: 90, SpeedMultiplier: 1.15},
	{Name: "The Coil", Curve: sim.CurveSpiral, PaletteSize: 5, SpawnCount: 100, SpeedMultiplier: 1.2},
	{Name: "Serpent Climb", Curve: sim.CurveSerpent, PaletteSize: 6, SpawnCount: 110, SpeedMultiplier: 1.25},
	{Name: "Trefoil", Curve: sim.CurveRose3, PaletteSize: 6, SpawnCount: 120, SpeedMultiplier: 1.3},
	{Name: "Clover", Curve: sim.CurveRose4, PaletteSize: 6, SpawnCount: 130, SpeedMultiplier: 1.35},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(levels)
}

// GetLevel returns the level definition at index, wrapping for endless
// cycles.
func GetLevel(index int) LevelDef {
	if index < 0 {
		index = 0
	}
	return levels[index%len(levels)]
}

// maxPalette caps the palette size against the available render colors.
const maxPalette = 6

// buildPalette returns the first n color indices.
func buildPalette(n int) []sim.Color {
	if n < 2 {
		n = 2
	}
	if n > maxPalette {
		n = maxPalette
	}
	palette := make([]sim.Color, n)
	for i := range palette {
		palette[i] = sim.Color(i)
	}
	return palette
}
