package sim

import (
	"math"
	"testing"
)

func testLevel(spawnCount int) Level {
	return Level{
		Name:            "test",
		Curve:           CurveCircle,
		Palette:         []Color{0, 1, 2, 3},
		SpawnCount:      spawnCount,
		SpeedMultiplier: 1,
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		s := NewSimulator(DefaultParams(), 12345)
		s.StartLevel(testLevel(40), 80, 24)
		for frame := 0; frame < 600; frame++ {
			if frame%37 == 0 {
				s.Fire(-math.Pi/2 + float64(frame)*0.01)
			}
			if frame == 100 {
				s.ActivatePowerup(PowerupSlowMo)
			}
			if frame == 300 {
				s.SwapColor()
			}
			s.Step()
			s.DrainEvents()
			if done, _ := s.Over(); done {
				break
			}
		}
		return s.Hash()
	}

	h1 := run()
	h2 := run()
	if h1 != h2 {
		t.Errorf("identical runs diverged: %d vs %d", h1, h2)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	run := func(seed int64) uint64 {
		s := NewSimulator(DefaultParams(), seed)
		s.StartLevel(testLevel(40), 80, 24)
		for frame := 0; frame < 300; frame++ {
			s.Step()
		}
		return s.Hash()
	}
	if run(1) == run(2) {
		t.Error("different seeds produced identical state hashes")
	}
}

func TestPauseFreezesState(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(20), 80, 24)
	for i := 0; i < 60; i++ {
		s.Step()
	}
	s.DrainEvents()

	s.SetPaused(true)
	before := s.Hash()
	for i := 0; i < 30; i++ {
		s.Step()
	}
	// Only the pause flag may differ, and it is set in both hashes.
	if got := s.Hash(); got != before {
		t.Errorf("paused simulation mutated state: %d -> %d", before, got)
	}
	if evs := s.DrainEvents(); len(evs) != 0 {
		t.Errorf("paused simulation emitted %d events", len(evs))
	}

	s.SetPaused(false)
	frames := s.Frames()
	s.Step()
	if s.Frames() != frames+1 {
		t.Error("simulation did not resume after unpause")
	}
}

func TestIntentsIgnoredWhilePaused(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(20), 80, 24)
	s.SetPaused(true)

	current := s.Shooter().Current
	next := s.Shooter().Next
	s.Fire(0)
	s.SwapColor()
	s.ActivatePowerup(PowerupEMP)

	if len(s.Projectiles()) != 0 {
		t.Error("fired while paused")
	}
	if s.Shooter().Current != current || s.Shooter().Next != next {
		t.Error("swapped colors while paused")
	}
	if s.EMPArmed() {
		t.Error("armed EMP while paused")
	}
}

func TestWinWhenQuotaCleared(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(0), 80, 24)
	s.Step()

	done, won := s.Over()
	if !done || !won {
		t.Fatalf("expected win, got done=%v won=%v", done, won)
	}
	var sawGameOver bool
	for _, e := range s.DrainEvents() {
		if e.Kind == EventGameOver {
			sawGameOver = true
			if !e.Won {
				t.Error("game over event not marked as won")
			}
		}
	}
	if !sawGameOver {
		t.Error("no game over event emitted")
	}
}

func TestWinWaitsForParticles(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(0), 80, 24)
	s.spawnBurst(s.Shooter().Pos, 0, 4)
	s.DrainEvents()

	s.Step()
	if done, _ := s.Over(); done {
		t.Fatal("won while particles were still alive")
	}
	for i := 0; i < 3*DefaultParams().ParticleLife; i++ {
		s.Step()
	}
	if done, won := s.Over(); !done || !won {
		t.Errorf("expected win after particles decayed, got done=%v won=%v", done, won)
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(0), 80, 24)
	s.Step()
	if done, _ := s.Over(); !done {
		t.Fatal("expected immediate win on empty quota")
	}
	frames := s.Frames()
	s.Step()
	if s.Frames() != frames {
		t.Error("stepped after game over")
	}
}

func TestFireAdvancesShooterQueue(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(20), 80, 24)

	loaded := s.Shooter().Current
	queued := s.Shooter().Next
	s.Fire(-math.Pi / 2)

	if len(s.Projectiles()) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(s.Projectiles()))
	}
	p := s.Projectiles()[0]
	if p.Color != loaded {
		t.Errorf("projectile color %d, want loaded color %d", p.Color, loaded)
	}
	if s.Shooter().Current != queued {
		t.Error("queued color did not advance into the shooter")
	}
	if math.Abs(p.Vel.Len()-DefaultParams().ProjectileSpeed) > 1e-9 {
		t.Errorf("projectile speed %f, want %f", p.Vel.Len(), DefaultParams().ProjectileSpeed)
	}
}

func TestSwapColor(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(20), 80, 24)
	a, b := s.Shooter().Current, s.Shooter().Next
	s.SwapColor()
	if s.Shooter().Current != b || s.Shooter().Next != a {
		t.Error("swap did not exchange shooter colors")
	}
}

func TestPowerupInventory(t *testing.T) {
	params := DefaultParams()
	params.StartEMP = 1
	s := NewSimulator(params, 7)
	s.StartLevel(testLevel(20), 80, 24)

	s.ActivatePowerup(PowerupEMP)
	if !s.EMPArmed() {
		t.Fatal("EMP did not arm")
	}
	if s.PowerupCount(PowerupEMP) != 0 {
		t.Errorf("EMP inventory %d, want 0", s.PowerupCount(PowerupEMP))
	}

	// Empty inventory: activation is a no-op.
	s.empArmed = false
	s.ActivatePowerup(PowerupEMP)
	if s.EMPArmed() {
		t.Error("armed EMP from empty inventory")
	}

	// The armed flag rides on the next shot only.
	s.empArmed = true
	s.Fire(0)
	if !s.Projectiles()[0].EMP {
		t.Error("projectile did not carry the armed EMP")
	}
	if s.EMPArmed() {
		t.Error("EMP stayed armed after firing")
	}
}

func TestSlowMoTimerCountsDown(t *testing.T) {
	params := DefaultParams()
	params.SlowMoFrames = 5
	s := NewSimulator(params, 7)
	s.StartLevel(testLevel(20), 80, 24)

	s.ActivatePowerup(PowerupSlowMo)
	if !s.SlowMoActive() {
		t.Fatal("slow-mo did not activate")
	}
	for i := 0; i < 5; i++ {
		s.Step()
	}
	if s.SlowMoActive() {
		t.Error("slow-mo still active after its window")
	}
}

func TestProgressReporting(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(10), 80, 24)

	s.spawned = 4
	placeMarbles(s, []float64{20, 18}, []Color{0, 1})
	// remaining = 10 - 4 + 2 = 8 -> 20% cleared
	if got := s.Progress(); math.Abs(got-20) > 1e-9 {
		t.Errorf("progress %f, want 20", got)
	}

	s.reportProgress()
	var last float64 = -1
	for _, e := range s.DrainEvents() {
		if e.Kind == EventProgressChanged {
			last = e.Progress
		}
	}
	if math.Abs(last-20) > 1e-9 {
		t.Errorf("reported progress %f, want 20", last)
	}

	// A change below the delta is not re-reported.
	s.reportProgress()
	for _, e := range s.DrainEvents() {
		if e.Kind == EventProgressChanged {
			t.Error("unchanged progress was re-reported")
		}
	}
}

func TestEventOutboxDrains(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(20), 80, 24)
	s.Fire(0)
	if evs := s.DrainEvents(); len(evs) == 0 {
		t.Fatal("expected events after firing")
	}
	if evs := s.DrainEvents(); evs != nil {
		t.Errorf("second drain returned %d events, want none", len(evs))
	}
}

func TestProjectileMissResetsStreak(t *testing.T) {
	s := NewSimulator(DefaultParams(), 7)
	s.StartLevel(testLevel(20), 80, 24)
	s.streak = 3

	// Fire straight right from the center: on the circle track only the
	// top of the loop is populated this early, so the shot exits the
	// viewport without contact.
	s.Fire(0)
	for i := 0; i < 200; i++ {
		s.Step()
		if len(s.Projectiles()) == 0 {
			break
		}
	}
	if len(s.Projectiles()) != 0 {
		t.Fatal("projectile never left the play area")
	}
	if s.Streak() != 0 {
		t.Errorf("streak %d after a miss, want 0", s.Streak())
	}
}
