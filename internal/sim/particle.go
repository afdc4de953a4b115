package sim

import (
	"fmt"
	"math"

	"github.com/arcadekit/marblestorm/internal/core"
)

// Particle is a short-lived debris fragment spawned by matches and
// explosions. Particles delay the win check until they have decayed so a
// level never ends mid-explosion.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  int // frames remaining
	Color Color
}

// FloatingText is a transient score/bonus label that drifts upward.
type FloatingText struct {
	Pos  core.Vec2
	Text string
	Life int
}

// spawnBurst creates count particles radiating from pos and emits the
// matching host event. Directions come from the simulation RNG so replays
// stay deterministic.
func (s *Simulator) spawnBurst(pos core.Vec2, color Color, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 0.3 + s.rng.Float64()*0.7
		s.particles = append(s.particles, Particle{
			Pos:   pos,
			Vel:   core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Life:  s.params.ParticleLife + s.rng.Intn(s.params.ParticleLife/2+1),
			Color: color,
		})
	}
	s.emit(Event{Kind: EventParticleBurst, Pos: pos, Color: color, Count: count})
}

// spawnText creates a floating label at pos and emits the host event.
func (s *Simulator) spawnText(pos core.Vec2, text string) {
	s.texts = append(s.texts, FloatingText{Pos: pos, Text: text, Life: s.params.TextLife})
	s.emit(Event{Kind: EventFloatingText, Pos: pos, Text: text})
}

// spawnScoreText formats a score gain as "+N".
func (s *Simulator) spawnScoreText(pos core.Vec2, points int) {
	s.spawnText(pos, fmt.Sprintf("+%d", points))
}

// updateParticles advances and decays particles and floating texts,
// compacting the live entries in place.
func (s *Simulator) updateParticles() {
	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(0.92)
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive

	texts := s.texts[:0]
	for i := range s.texts {
		t := s.texts[i]
		t.Pos.Y -= 0.15
		t.Life--
		if t.Life > 0 {
			texts = append(texts, t)
		}
	}
	s.texts = texts
}
