package sim

import "github.com/arcadekit/marblestorm/internal/core"

// oobMargin is how far past the viewport edge a projectile may fly before
// it counts as a miss.
const oobMargin = 2.0

// stepProjectiles advances every projectile with continuous collision
// detection and compacts the survivors in place.
func (s *Simulator) stepProjectiles() {
	alive := s.projectiles[:0]
	for i := range s.projectiles {
		p := s.projectiles[i]
		if s.flyProjectile(&p) {
			alive = append(alive, p)
		}
	}
	s.projectiles = alive
}

// flyProjectile moves one projectile for one frame, sub-stepping so that
// no single move exceeds 0.8 of a marble diameter. Fast shots cannot
// tunnel through the chain. Returns false once the projectile is spent.
func (s *Simulator) flyProjectile(p *Projectile) bool {
	maxStep := 0.8 * 2 * s.params.Radius
	speed := p.Vel.Len()
	steps := int(speed/maxStep) + 1
	delta := p.Vel.Scale(1 / float64(steps))

	// Squared contact distance, slightly generous so grazing shots land.
	reach := s.params.ProximityFactor * s.params.Radius
	reach2 := reach * reach

	for n := 0; n < steps; n++ {
		p.Pos = p.Pos.Add(delta)
		if p.Pos.X < -oobMargin || p.Pos.X > s.width+oobMargin ||
			p.Pos.Y < -oobMargin || p.Pos.Y > s.height+oobMargin {
			s.streak = 0
			s.emit(Event{Kind: EventSoundCue, Cue: CueMiss})
			return false
		}
		for i := range s.marbles {
			if p.Pos.Dist2(s.path.PointAt(s.marbles[i].Offset)) <= reach2 {
				s.handleHit(*p, i)
				return false
			}
		}
	}
	return true
}

// handleHit dispatches a projectile contact on the marble at index idx.
// The struck marble's kind wins: specials trigger their own effect even
// when the shot is EMP-armed. Only a plain contact detonates the EMP;
// otherwise the shot inserts behind the struck marble and resolves
// matches there.
func (s *Simulator) handleHit(p Projectile, idx int) {
	switch s.marbles[idx].Kind {
	case KindBomb:
		s.detonateBomb(idx)
		return
	case KindCoin:
		s.collectCoin(idx)
		return
	case KindIce:
		s.triggerIce(idx)
		return
	}

	if p.EMP {
		contact := s.path.PointAt(s.marbles[idx].Offset)
		s.explodeAt(contact, s.params.EMPRadiusFactor*2*s.params.Radius)
		s.emit(Event{Kind: EventShake})
		return
	}

	s.insertShot(p, idx)
}

// insertShot converts the projectile into a chain marble directly behind
// the struck marble, pushing trailing marbles outward to make room, then
// runs match resolution at the insertion point.
func (s *Simulator) insertShot(p Projectile, idx int) {
	diameter := 2 * s.params.Radius
	m := Marble{
		ID:     p.ID,
		Color:  p.Color,
		Kind:   KindNormal,
		Offset: s.marbles[idx].Offset - diameter,
	}
	s.insertMarble(idx+1, m)
	s.emit(Event{Kind: EventSoundCue, Cue: CueInsert})

	// Sweep outward: each trailing marble yields just enough to restore
	// clearance, stopping at the first real gap.
	for j := idx + 2; j < len(s.marbles); j++ {
		if s.marbles[j-1].Offset-s.marbles[j].Offset >= diameter {
			break
		}
		s.marbles[j].Offset = s.marbles[j-1].Offset - diameter
	}

	if s.resolveMatches(idx+1, false) {
		s.streak++
	} else {
		s.streak = 0
	}
}

// explodeAt removes every marble within radius of pos, scoring each one.
func (s *Simulator) explodeAt(pos core.Vec2, radius float64) {
	r2 := radius * radius
	doomed := make(map[int]bool)
	for i := range s.marbles {
		if pos.Dist2(s.path.PointAt(s.marbles[i].Offset)) <= r2 {
			doomed[i] = true
		}
	}
	if len(doomed) == 0 {
		s.spawnBurst(pos, 0, 6)
		s.emit(Event{Kind: EventSoundCue, Cue: CueBomb})
		return
	}
	points := len(doomed) * s.params.PointsPerMarble
	s.addScore(points)
	s.addCredits(len(doomed) * s.params.CreditsPerMarble)
	s.spawnBurst(pos, 0, 4*len(doomed))
	s.spawnScoreText(pos, points)
	s.emit(Event{Kind: EventSoundCue, Cue: CueBomb})
	s.removeMarked(doomed)
}

// detonateBomb triggers the bomb marble at idx, clearing its blast radius.
func (s *Simulator) detonateBomb(idx int) {
	pos := s.path.PointAt(s.marbles[idx].Offset)
	s.explodeAt(pos, s.params.BombRadiusFactor*2*s.params.Radius)
	s.emit(Event{Kind: EventShake})
}

// collectCoin cashes in the coin marble at idx.
func (s *Simulator) collectCoin(idx int) {
	pos := s.path.PointAt(s.marbles[idx].Offset)
	s.addCredits(s.params.CoinValue)
	s.spawnBurst(pos, s.marbles[idx].Color, 6)
	s.spawnText(pos, "$")
	s.emit(Event{Kind: EventSoundCue, Cue: CueCoin})
	s.removeRange(idx, idx)
}

// triggerIce pops the ice marble at idx and freezes chain advance.
func (s *Simulator) triggerIce(idx int) {
	pos := s.path.PointAt(s.marbles[idx].Offset)
	if s.params.IceFreezeFrames > s.freezeFrames {
		s.freezeFrames = s.params.IceFreezeFrames
	}
	s.spawnBurst(pos, s.marbles[idx].Color, 8)
	s.spawnText(pos, "freeze!")
	s.emit(Event{Kind: EventSoundCue, Cue: CueIce})
	s.removeRange(idx, idx)
}
