// Package sim implements the marble-shooter simulation: path generation,
// chain physics, projectile collision, match resolution and progression.
// It is deliberately free of rendering and platform concerns so it can be
// stepped headlessly in tests.
package sim

import "sort"

// Color is an index into the active level palette.
type Color int

// Kind classifies a marble's behavior on match or hit.
type Kind int

const (
	KindNormal   Kind = iota
	KindWildcard      // matches any color
	KindBomb          // destroys marbles in a radius when matched or struck
	KindIce           // freezes chain advance for a while
	KindCoin          // grants credits, removed on contact
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindWildcard:
		return "wildcard"
	case KindBomb:
		return "bomb"
	case KindIce:
		return "ice"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Marble is a single marble travelling along the path. Offset is the
// arclength distance from the spawn end of the path; larger offsets are
// closer to the core.
type Marble struct {
	ID     int
	Color  Color
	Kind   Kind
	Offset float64
	Speed  float64 // signed offset units per frame; negative moves backward
}

// Backwards reports whether the marble moved away from the core last frame.
func (m Marble) Backwards() bool {
	return m.Speed < 0
}

// sortMarbles orders marbles by descending offset, so index 0 is the
// marble nearest the core. All chain logic assumes this ordering.
func (s *Simulator) sortMarbles() {
	sort.Slice(s.marbles, func(i, j int) bool {
		return s.marbles[i].Offset > s.marbles[j].Offset
	})
}

// insertMarble places m at index idx, shifting the rest back.
func (s *Simulator) insertMarble(idx int, m Marble) {
	s.marbles = append(s.marbles, Marble{})
	copy(s.marbles[idx+1:], s.marbles[idx:])
	s.marbles[idx] = m
}

// removeRange deletes marbles in [lo, hi] with a single compaction pass.
func (s *Simulator) removeRange(lo, hi int) {
	s.marbles = append(s.marbles[:lo], s.marbles[hi+1:]...)
}

// removeMarked compacts the store, dropping every marble whose index is in
// the doomed set. The relative order of survivors is preserved.
func (s *Simulator) removeMarked(doomed map[int]bool) {
	if len(doomed) == 0 {
		return
	}
	alive := s.marbles[:0]
	for i := range s.marbles {
		if !doomed[i] {
			alive = append(alive, s.marbles[i])
		}
	}
	s.marbles = alive
}

// chain is a contiguous run of touching marbles, as index bounds into the
// sorted store. start is the core-most marble, end the spawn-most.
type chain struct {
	start, end int
}

// partitionChains splits the sorted store into chains. Two neighbors belong
// to the same chain when their gap is at most 2*radius plus tolerance.
func (s *Simulator) partitionChains() []chain {
	if len(s.marbles) == 0 {
		return nil
	}
	maxGap := 2*s.params.Radius + s.params.ChainTolerance
	chains := []chain{{start: 0, end: 0}}
	for i := 1; i < len(s.marbles); i++ {
		gap := s.marbles[i-1].Offset - s.marbles[i].Offset
		if gap > maxGap {
			chains = append(chains, chain{start: i, end: i})
		} else {
			chains[len(chains)-1].end = i
		}
	}
	return chains
}
