package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a full copy of the simulation state, used for determinism
// tests and state hashing. Presentation-only entities (particles, texts)
// are excluded: they never feed back into gameplay decisions beyond the
// win delay, which the counts capture.
type Snapshot struct {
	Frames  int
	Spawned int
	NextID  int
	Score   int
	Credits int
	Streak  int

	SlowMoFrames  int
	FreezeFrames  int
	ReverseFrames int
	EMPArmed      bool

	Paused bool
	Over   bool
	Won    bool

	Marbles     []Marble
	Projectiles []Projectile
	Shooter     Shooter
	Particles   int
	Texts       int

	RNGState uint64
}

// TakeSnapshot captures the current state. Slices are deep-copied.
func (s *Simulator) TakeSnapshot() Snapshot {
	snap := Snapshot{
		Frames:        s.frames,
		Spawned:       s.spawned,
		NextID:        s.nextID,
		Score:         s.score,
		Credits:       s.credits,
		Streak:        s.streak,
		SlowMoFrames:  s.slowMoFrames,
		FreezeFrames:  s.freezeFrames,
		ReverseFrames: s.reverseFrames,
		EMPArmed:      s.empArmed,
		Paused:        s.paused,
		Over:          s.over,
		Won:           s.won,
		Shooter:       s.shooter,
		Particles:     len(s.particles),
		Texts:         len(s.texts),
	}
	snap.Marbles = make([]Marble, len(s.marbles))
	copy(snap.Marbles, s.marbles)
	snap.Projectiles = make([]Projectile, len(s.projectiles))
	copy(snap.Projectiles, s.projectiles)
	if lcg, ok := s.rng.(*LCG); ok {
		snap.RNGState = lcg.State()
	}
	return snap
}

// Hash folds the snapshot into a single value. Two simulations stepped
// identically from the same seed must produce equal hashes.
func (s *Simulator) Hash() uint64 {
	snap := s.TakeSnapshot()
	h := fnv.New64a()
	buf := make([]byte, 8)

	wi := func(v int) {
		binary.LittleEndian.PutUint64(buf, uint64(v)) //#nosec G115 -- hashing only
		_, _ = h.Write(buf)
	}
	wf := func(v float64) {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		_, _ = h.Write(buf)
	}
	wb := func(v bool) {
		if v {
			wi(1)
		} else {
			wi(0)
		}
	}

	wi(snap.Frames)
	wi(snap.Spawned)
	wi(snap.NextID)
	wi(snap.Score)
	wi(snap.Credits)
	wi(snap.Streak)
	wi(snap.SlowMoFrames)
	wi(snap.FreezeFrames)
	wi(snap.ReverseFrames)
	wb(snap.EMPArmed)
	wb(snap.Paused)
	wb(snap.Over)
	wb(snap.Won)
	wi(snap.Particles)
	wi(snap.Texts)

	wf(snap.Shooter.Pos.X)
	wf(snap.Shooter.Pos.Y)
	wf(snap.Shooter.Angle)
	wi(int(snap.Shooter.Current))
	wi(int(snap.Shooter.Next))

	for _, m := range snap.Marbles {
		wi(m.ID)
		wi(int(m.Color))
		wi(int(m.Kind))
		wf(m.Offset)
		wf(m.Speed)
	}
	for _, p := range snap.Projectiles {
		wi(p.ID)
		wf(p.Pos.X)
		wf(p.Pos.Y)
		wf(p.Vel.X)
		wf(p.Vel.Y)
		wi(int(p.Color))
		wb(p.EMP)
	}

	binary.LittleEndian.PutUint64(buf, snap.RNGState)
	_, _ = h.Write(buf)

	return h.Sum64()
}
