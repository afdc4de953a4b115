package sim

// Rand is the random source consumed by the simulator. It is an interface
// so tests can feed scripted roll values for boundary-exact scenarios.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// LCG is a deterministic pseudo-random number generator using a linear
// congruential generator. Cheap, seedable, and stable across platforms,
// which keeps replays and determinism tests exact.
type LCG struct {
	state uint64
}

// NewLCG creates a new generator with the given seed.
func NewLCG(seed int64) *LCG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

// Next generates the next random uint64.
func (r *LCG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *LCG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// State exposes the internal state for snapshots.
func (r *LCG) State() uint64 {
	return r.state
}

// SetState restores the internal state from a snapshot.
func (r *LCG) SetState(state uint64) {
	if state == 0 {
		state = 1
	}
	r.state = state
}
