package sim

import (
	"math"
	"testing"
)

func TestRollKindZones(t *testing.T) {
	params := DefaultParams()
	params.SpecialChance = 0.02
	params.LuckBonus = 0

	cases := []struct {
		name string
		ice  bool
		coin bool
		roll float64
		want Kind
	}{
		{"wildcard zone", false, false, 0.019, KindWildcard},
		{"bomb zone start", false, false, 0.021, KindBomb},
		{"bomb zone end", false, false, 0.039, KindBomb},
		{"past last zone", false, false, 0.040, KindNormal},
		{"high roll", false, false, 0.97, KindNormal},
		{"ice zone", true, false, 0.041, KindIce},
		{"coin zone", true, true, 0.061, KindCoin},
		{"past coin zone", true, true, 0.081, KindNormal},
	}
	for _, tc := range cases {
		params.EnableIce = tc.ice
		params.EnableCoin = tc.coin
		s := newTestSim(params, 0)
		s.SetRand(&scriptRand{floats: []float64{tc.roll}})
		if got := s.rollKind(); got != tc.want {
			t.Errorf("%s: roll %f -> %v, want %v", tc.name, tc.roll, got, tc.want)
		}
	}
}

func TestRollKindZeroChance(t *testing.T) {
	params := DefaultParams()
	params.SpecialChance = 0
	params.LuckBonus = 0
	s := newTestSim(params, 0)
	s.SetRand(&scriptRand{floats: []float64{0.0}})
	if got := s.rollKind(); got != KindNormal {
		t.Errorf("zero special chance rolled %v, want normal", got)
	}
}

func TestSpawnRespectsClearance(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 10)

	// Blocked: a marble sits inside the clearance window.
	placeMarbles(s, []float64{params.SpawnGapFactor * 2 * params.Radius}, []Color{0})
	before := len(s.Marbles())
	s.spawnMarbles()
	if len(s.Marbles()) != before {
		t.Error("spawned while the spawn end was blocked")
	}

	// Clear: the nearest marble is beyond the window.
	placeMarbles(s, []float64{params.SpawnGapFactor*2*params.Radius + 0.01}, []Color{0})
	s.spawnMarbles()
	if len(s.Marbles()) != 2 {
		t.Fatalf("expected spawn, have %d marbles", len(s.Marbles()))
	}
	spawned := s.Marbles()[1]
	if spawned.Offset != 0 {
		t.Errorf("new marble spawned at offset %f, want 0", spawned.Offset)
	}
}

func TestSpawnStopsAtQuota(t *testing.T) {
	s := newTestSim(DefaultParams(), 1)
	s.spawnMarbles()
	s.marbles = nil // clear the track so clearance is not the limiter
	s.spawnMarbles()
	if len(s.Marbles()) != 0 {
		t.Error("spawned past the level quota")
	}
}

func TestLeadChainAdvances(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	placeMarbles(s, []float64{20, 18, 16}, []Color{0, 1, 2})

	offsets := []float64{20, 18, 16}
	s.Step()
	for i, m := range s.Marbles() {
		if m.Offset <= offsets[i] {
			t.Errorf("marble %d did not advance: %f -> %f", i, offsets[i], m.Offset)
		}
	}
}

func TestChainPullRequiresColorMatch(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)

	// Three chains so the middle one is a trailing chain with a chain
	// behind it. Facing colors across the rear gap match.
	placeMarbles(s, []float64{40, 38, 25, 23, 10, 8}, []Color{0, 0, 1, 2, 2, 3})
	s.sortMarbles()
	s.applyChainVelocities()

	ms := s.Marbles()
	if ms[2].Speed >= 0 || ms[3].Speed >= 0 {
		t.Errorf("matching trailing chain should pull backward, speeds %f %f", ms[2].Speed, ms[3].Speed)
	}
	if ms[0].Speed <= 0 {
		t.Errorf("lead chain should advance, speed %f", ms[0].Speed)
	}
	if ms[4].Speed != 0 || ms[5].Speed != 0 {
		t.Errorf("last chain should be idle, speeds %f %f", ms[4].Speed, ms[5].Speed)
	}

	// Break the color match across the rear gap: no pull.
	placeMarbles(s, []float64{40, 38, 25, 23, 10, 8}, []Color{0, 0, 1, 2, 3, 3})
	s.sortMarbles()
	s.applyChainVelocities()
	ms = s.Marbles()
	if ms[2].Speed != 0 || ms[3].Speed != 0 {
		t.Errorf("mismatched trailing chain should idle, speeds %f %f", ms[2].Speed, ms[3].Speed)
	}
}

func TestReverseOverridesChainMotion(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	placeMarbles(s, []float64{20, 18}, []Color{0, 1})
	s.reverseFrames = 10
	s.applyChainVelocities()
	for i, m := range s.Marbles() {
		if m.Speed >= 0 {
			t.Errorf("marble %d should move backward under reverse, speed %f", i, m.Speed)
		}
	}
}

func TestFreezeStopsChains(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	placeMarbles(s, []float64{20, 18}, []Color{0, 0})
	s.freezeFrames = 10
	s.applyChainVelocities()
	for i, m := range s.Marbles() {
		if m.Speed != 0 {
			t.Errorf("marble %d should be frozen, speed %f", i, m.Speed)
		}
	}
}

func TestNoOverlapAfterStep(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)

	// Deliberately overlapping marbles with distinct colors so no match
	// fires during resolution.
	placeMarbles(s, []float64{20, 19.2, 18.9, 17}, []Color{0, 1, 2, 3})
	s.Step()

	diameter := 2 * params.Radius
	ms := s.Marbles()
	for i := 1; i < len(ms); i++ {
		gap := ms[i-1].Offset - ms[i].Offset
		if gap < diameter-1e-9 {
			t.Errorf("marbles %d and %d overlap: gap %f < %f", i-1, i, gap, diameter)
		}
	}
}

func TestOverlapSnapPropagatesSpeed(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)
	placeMarbles(s, []float64{20, 19}, []Color{0, 1})
	s.marbles[0].Speed = 0.5
	s.marbles[1].Speed = 0.1
	s.resolveOverlaps()

	ms := s.Marbles()
	if got := ms[0].Offset - ms[1].Offset; math.Abs(got-2*params.Radius) > 1e-9 {
		t.Errorf("snap distance %f, want %f", got, 2*params.Radius)
	}
	if ms[1].Speed != 0.5 {
		t.Errorf("faster inner speed not propagated: %f", ms[1].Speed)
	}
}

func TestBackwardContactTriggersComboMatch(t *testing.T) {
	params := DefaultParams()
	s := newTestSim(params, 0)

	// A backward-moving pair of reds overlapping a stationary red: contact
	// should stop the motion and clear the run as a combo.
	placeMarbles(s, []float64{20, 18, 17.5}, []Color{1, 1, 1})
	s.marbles[0].Speed = -0.5
	s.marbles[1].Speed = -0.5
	s.resolveOverlaps()

	if len(s.Marbles()) != 0 {
		t.Fatalf("expected combo clear, %d marbles remain", len(s.Marbles()))
	}
	if s.Score() == 0 {
		t.Error("combo match did not score")
	}
}

func TestLossWhenLeadReachesCore(t *testing.T) {
	s := newTestSim(DefaultParams(), 0)
	placeMarbles(s, []float64{s.Path().TotalLength + 0.5}, []Color{0})
	s.checkLoss()
	done, won := s.Over()
	if !done || won {
		t.Errorf("expected loss, got done=%v won=%v", done, won)
	}
}
