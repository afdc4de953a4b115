package sim

// scriptRand feeds predetermined values to the simulator so tests can hit
// exact roll boundaries. Exhausted scripts fall back to fixed values that
// roll a normal marble and the first palette color.
type scriptRand struct {
	floats []float64
	fi     int
	ints   []int
	ii     int
}

func (r *scriptRand) Float64() float64 {
	if r.fi < len(r.floats) {
		v := r.floats[r.fi]
		r.fi++
		return v
	}
	return 0.99
}

func (r *scriptRand) Intn(n int) int {
	if r.ii < len(r.ints) {
		v := r.ints[r.ii]
		r.ii++
		if v < n {
			return v
		}
	}
	return 0
}

// newTestSim builds a started simulator on a simple track with the given
// params. The level quota is zero so nothing spawns unless a test asks.
func newTestSim(params Params, spawnCount int) *Simulator {
	s := NewSimulator(params, 1)
	s.StartLevel(Level{
		Name:            "test",
		Curve:           CurveCircle,
		Palette:         []Color{0, 1, 2, 3},
		SpawnCount:      spawnCount,
		SpeedMultiplier: 1,
	}, 80, 24)
	return s
}

// placeMarbles replaces the store with marbles at the given offsets,
// core-most first, all normal kind with the given colors.
func placeMarbles(s *Simulator, offsets []float64, colors []Color) {
	s.marbles = s.marbles[:0]
	for i, off := range offsets {
		s.marbles = append(s.marbles, Marble{
			ID:     1000 + i,
			Color:  colors[i],
			Kind:   KindNormal,
			Offset: off,
		})
	}
}
