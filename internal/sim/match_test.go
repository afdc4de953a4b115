package sim

import "testing"

func TestResolveMatchesClearsRun(t *testing.T) {
	s := newTestSim(DefaultParams(), 0)
	// Core-most first: A A B B B C
	placeMarbles(s, []float64{30, 28, 26, 24, 22, 20}, []Color{0, 0, 1, 1, 1, 2})

	if !s.resolveMatches(3, false) {
		t.Fatal("run of three should resolve")
	}
	ms := s.Marbles()
	if len(ms) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(ms))
	}
	wantColors := []Color{0, 0, 2}
	for i, m := range ms {
		if m.Color != wantColors[i] {
			t.Errorf("survivor %d has color %d, want %d", i, m.Color, wantColors[i])
		}
	}
	if want := 3 * s.params.PointsPerMarble; s.Score() != want {
		t.Errorf("score %d, want %d", s.Score(), want)
	}
}

func TestResolveMatchesTooShort(t *testing.T) {
	s := newTestSim(DefaultParams(), 0)
	placeMarbles(s, []float64{30, 28, 26}, []Color{1, 1, 2})

	if s.resolveMatches(0, false) {
		t.Error("run of two should not resolve")
	}
	if len(s.Marbles()) != 3 {
		t.Errorf("marbles removed without a match: %d left", len(s.Marbles()))
	}
	if s.Score() != 0 {
		t.Errorf("scored %d without a match", s.Score())
	}
}

func TestWildcardBridgesRun(t *testing.T) {
	s := newTestSim(DefaultParams(), 0)
	placeMarbles(s, []float64{30, 28, 26}, []Color{1, 3, 1})
	s.marbles[1].Kind = KindWildcard

	if !s.resolveMatches(0, false) {
		t.Fatal("wildcard should bridge two same-colored marbles")
	}
	if len(s.Marbles()) != 0 {
		t.Errorf("%d marbles left, want 0", len(s.Marbles()))
	}
}

func TestComboPaysMore(t *testing.T) {
	params := DefaultParams()

	direct := newTestSim(params, 0)
	placeMarbles(direct, []float64{30, 28, 26}, []Color{1, 1, 1})
	direct.resolveMatches(1, false)

	combo := newTestSim(params, 0)
	placeMarbles(combo, []float64{30, 28, 26}, []Color{1, 1, 1})
	combo.resolveMatches(1, true)

	if combo.Score() <= direct.Score() {
		t.Errorf("combo score %d should exceed direct score %d", combo.Score(), direct.Score())
	}
	if combo.Credits() != direct.Credits()+params.ComboCreditBonus {
		t.Errorf("combo credits %d, want %d", combo.Credits(), direct.Credits()+params.ComboCreditBonus)
	}
}

func TestStreakScalesScore(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	s.streak = 2
	placeMarbles(s, []float64{30, 28, 26}, []Color{1, 1, 1})
	s.resolveMatches(1, false)

	base := float64(3*params.PointsPerMarble) * params.ScoreMultiplier
	want := int(base * (1 + params.StreakStep*2))
	if s.Score() != want {
		t.Errorf("streak score %d, want %d", s.Score(), want)
	}
}

func TestSpecialPivotTriggersEffect(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	placeMarbles(s, []float64{30, 28, 26}, []Color{1, 1, 1})
	s.marbles[1].Kind = KindCoin

	if !s.resolveMatches(1, false) {
		t.Fatal("coin pivot should trigger")
	}
	if s.Credits() != params.CoinValue {
		t.Errorf("credits %d, want coin value %d", s.Credits(), params.CoinValue)
	}
	// Only the coin is removed; the neighbors stay.
	if len(s.Marbles()) != 2 {
		t.Errorf("%d marbles left, want 2", len(s.Marbles()))
	}
}

func TestSpecialInsideRunWinsOverClear(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	placeMarbles(s, []float64{30, 28, 26}, []Color{1, 1, 1})
	s.marbles[0].Kind = KindIce

	if !s.resolveMatches(1, false) {
		t.Fatal("run containing an ice marble should trigger it")
	}
	if !s.Frozen() {
		t.Error("ice in a matched run should freeze the chains")
	}
	// The ice pops; the plain clear is preempted.
	if len(s.Marbles()) != 2 {
		t.Errorf("%d marbles left, want 2", len(s.Marbles()))
	}
}

func TestBombInRunDetonates(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	// Bomb inside a matched run; the blast covers the tight cluster.
	placeMarbles(s, []float64{30, 28, 26, 24}, []Color{1, 1, 1, 2})
	s.marbles[1].Kind = KindBomb

	if !s.resolveMatches(2, false) {
		t.Fatal("run containing a bomb should detonate")
	}
	if len(s.Marbles()) != 0 {
		t.Errorf("%d marbles survived a blast covering the cluster", len(s.Marbles()))
	}
}
