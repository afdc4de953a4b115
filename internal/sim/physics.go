package sim

import "math"

// stepPhysics runs one frame of chain simulation: spawn, win check,
// ordering, per-chain velocities, integration, contact resolution with
// chain-reaction matches, and the loss check.
func (s *Simulator) stepPhysics() {
	s.spawnMarbles()
	if s.checkWin() {
		return
	}
	s.sortMarbles()
	s.applyChainVelocities()
	for i := range s.marbles {
		s.marbles[i].Offset += s.marbles[i].Speed
	}
	s.resolveOverlaps()
	s.checkLoss()
}

// spawnMarbles feeds new marbles at offset 0 while the level quota lasts
// and the spawn end is clear.
func (s *Simulator) spawnMarbles() {
	if s.spawned >= s.level.SpawnCount {
		return
	}
	clearance := s.params.SpawnGapFactor * 2 * s.params.Radius
	if len(s.marbles) > 0 {
		nearest := math.Inf(1)
		for i := range s.marbles {
			if s.marbles[i].Offset < nearest {
				nearest = s.marbles[i].Offset
			}
		}
		if nearest <= clearance {
			return
		}
	}
	s.marbles = append(s.marbles, Marble{
		ID:     s.nextID,
		Color:  s.randomColor(),
		Kind:   s.rollKind(),
		Offset: 0,
	})
	s.nextID++
	s.spawned++
}

// rollKind draws one roll and maps it onto consecutive special zones of
// equal width: wildcard, bomb, then ice and coin when enabled. Anything
// past the last zone is a normal marble.
func (s *Simulator) rollKind() Kind {
	p := s.params.SpecialChance + s.params.LuckBonus
	if p <= 0 {
		return KindNormal
	}
	tiers := []Kind{KindWildcard, KindBomb}
	if s.params.EnableIce {
		tiers = append(tiers, KindIce)
	}
	if s.params.EnableCoin {
		tiers = append(tiers, KindCoin)
	}
	r := s.rng.Float64()
	zone := int(r / p)
	if zone >= 0 && zone < len(tiers) {
		return tiers[zone]
	}
	return KindNormal
}

// checkWin ends the level in victory once the quota is exhausted, the
// track is empty and the last particles have burned out.
func (s *Simulator) checkWin() bool {
	if s.spawned >= s.level.SpawnCount && len(s.marbles) == 0 && len(s.particles) == 0 {
		s.gameOver(true)
		return true
	}
	return false
}

// applyChainVelocities assigns a speed to every marble based on its chain.
// The lead chain advances toward the core; a trailing chain is pulled
// backward toward the chain behind it when the facing colors match, which
// is what sets up chain-reaction combos.
func (s *Simulator) applyChainVelocities() {
	chains := s.partitionChains()
	if len(chains) == 0 {
		return
	}

	timeScale := 1.0
	if s.slowMoFrames > 0 {
		timeScale = s.params.SlowMoScale
	}
	if s.freezeFrames > 0 {
		timeScale = 0
	}

	if s.reverseFrames > 0 {
		v := -s.params.ReverseForce * timeScale
		for i := range s.marbles {
			s.marbles[i].Speed = v
		}
		return
	}

	ramp := math.Min(s.params.RampCap, 1+float64(s.frames)*s.params.RampRate)
	lead := s.params.BaseSpeed * s.level.SpeedMultiplier * ramp * timeScale

	for ci, c := range chains {
		v := 0.0
		if ci == 0 {
			v = lead
		} else if ci+1 < len(chains) {
			// Pull backward toward the chain behind when the facing
			// colors match; the pull scales with the gap and is capped.
			tail := s.marbles[c.end]
			head := s.marbles[chains[ci+1].start]
			if colorsMatch(tail, head) {
				gap := tail.Offset - head.Offset - 2*s.params.Radius
				if gap > 0 {
					pull := math.Min(s.params.MaxPullSpeed, gap*s.params.PullRate)
					v = -pull * timeScale
				}
			}
		}
		for i := c.start; i <= c.end; i++ {
			s.marbles[i].Speed = v
		}
	}
}

// colorsMatch reports whether two marbles can merge into one color run.
func colorsMatch(a, b Marble) bool {
	return a.Kind == KindWildcard || b.Kind == KindWildcard || a.Color == b.Color
}

// resolveOverlaps walks core-most to spawn-most and snaps any overlapping
// pair apart, propagating the faster inner speed outward. When a chain
// moving backwards is stopped by contact, the junction is checked for a
// chain-reaction match; a successful match compacts the store, so the
// scan restarts from the top.
func (s *Simulator) resolveOverlaps() {
	diameter := 2 * s.params.Radius
	for i := 1; i < len(s.marbles); i++ {
		inner := &s.marbles[i-1]
		outer := &s.marbles[i]
		if inner.Offset-outer.Offset >= diameter {
			continue
		}
		wasBackwards := inner.Backwards()
		outer.Offset = inner.Offset - diameter
		if math.Abs(inner.Speed) > math.Abs(outer.Speed) {
			outer.Speed = inner.Speed
		}
		if wasBackwards {
			inner.Speed = 0
			outer.Speed = 0
			if s.resolveMatches(i-1, true) {
				i = 0 // store compacted, rescan
			}
		}
	}
}

// checkLoss ends the level when the lead marble reaches the core.
func (s *Simulator) checkLoss() {
	if len(s.marbles) == 0 || s.path.TotalLength <= 0 {
		return
	}
	if s.marbles[0].Offset >= s.path.TotalLength {
		s.gameOver(false)
	}
}
