package sim

// resolveMatches checks the color run around the marble at idx and, when
// it spans at least three marbles, removes it and scores it. combo marks
// chain-reaction matches caused by chains snapping together, which pay
// more than direct shots.
//
// Special marbles take priority: a special pivot triggers immediately, and
// a special caught inside a long enough run triggers instead of a plain
// clear. Returns true when anything was removed.
func (s *Simulator) resolveMatches(idx int, combo bool) bool {
	if idx < 0 || idx >= len(s.marbles) {
		return false
	}

	switch s.marbles[idx].Kind {
	case KindBomb:
		s.detonateBomb(idx)
		return true
	case KindCoin:
		s.collectCoin(idx)
		return true
	case KindIce:
		s.triggerIce(idx)
		return true
	}

	pivot := s.marbles[idx]
	lo, hi := idx, idx
	for lo > 0 && runMatch(s.marbles[lo-1], pivot) {
		lo--
	}
	for hi < len(s.marbles)-1 && runMatch(s.marbles[hi+1], pivot) {
		hi++
	}
	count := hi - lo + 1
	if count < 3 {
		return false
	}

	// A special inside the run wins over a plain clear.
	for j := lo; j <= hi; j++ {
		switch s.marbles[j].Kind {
		case KindBomb:
			s.detonateBomb(j)
			return true
		case KindCoin:
			s.collectCoin(j)
			return true
		case KindIce:
			s.triggerIce(j)
			return true
		}
	}

	mid := s.path.PointAt((s.marbles[lo].Offset + s.marbles[hi].Offset) / 2)

	points := float64(count*s.params.PointsPerMarble) * s.params.ScoreMultiplier
	if combo {
		points *= s.params.ComboMultiplier
	}
	points *= 1 + s.params.StreakStep*float64(s.streak)
	s.addScore(int(points))

	credits := count * s.params.CreditsPerMarble
	if combo {
		credits += s.params.ComboCreditBonus
	}
	s.addCredits(credits)

	s.spawnBurst(mid, pivot.Color, 3*count)
	s.spawnScoreText(mid, int(points))
	if combo {
		s.spawnText(mid, "combo!")
	}
	s.emit(Event{Kind: EventSoundCue, Cue: CueMatch})

	s.removeRange(lo, hi)
	return true
}

// runMatch reports whether m extends a run anchored on pivot: same color,
// or either side is a wildcard.
func runMatch(m, pivot Marble) bool {
	return m.Kind == KindWildcard || pivot.Kind == KindWildcard || m.Color == pivot.Color
}
