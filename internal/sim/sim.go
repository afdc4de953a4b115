package sim

import (
	"math"

	"github.com/arcadekit/marblestorm/internal/core"
)

// Simulator owns all mutable state of a running level. The host drives it
// with intent methods (Fire, SwapColor, ...) and one Step per tick, then
// drains the event outbox. It holds no timers and no goroutines: a frame
// counter is the only clock, so stepping N times always yields the same
// state for the same seed.
type Simulator struct {
	params Params
	level  Level
	rng    Rand

	path          Path
	width, height float64

	marbles     []Marble
	projectiles []Projectile
	particles   []Particle
	texts       []FloatingText
	shooter     Shooter

	nextID  int
	spawned int
	frames  int

	score   int
	credits int
	streak  int

	slowMoFrames  int
	freezeFrames  int
	reverseFrames int
	empArmed      bool
	inventory     map[Powerup]int

	paused bool
	over   bool
	won    bool

	events       []Event
	lastProgress float64
	progressSent bool
}

// NewSimulator creates a simulator with the given tunables and seed.
// StartLevel must be called before the first Step.
func NewSimulator(params Params, seed int64) *Simulator {
	return &Simulator{
		params: params,
		rng:    NewLCG(seed),
	}
}

// SetRand replaces the random source. Tests use this to feed scripted
// roll values; it must be called before StartLevel.
func (s *Simulator) SetRand(r Rand) {
	s.rng = r
}

// StartLevel resets all per-level state and generates the track for the
// current viewport size.
func (s *Simulator) StartLevel(level Level, width, height float64) {
	if level.SpeedMultiplier <= 0 {
		level.SpeedMultiplier = 1
	}
	if len(level.Palette) == 0 {
		level.Palette = []Color{0, 1, 2, 3}
	}
	s.level = level
	s.width = width
	s.height = height
	s.path = GeneratePath(level.Curve, width, height, s.params.PathSteps)

	s.marbles = nil
	s.projectiles = nil
	s.particles = nil
	s.texts = nil
	s.nextID = 1
	s.spawned = 0
	s.frames = 0
	s.score = 0
	s.credits = 0
	s.streak = 0
	s.slowMoFrames = 0
	s.freezeFrames = 0
	s.reverseFrames = 0
	s.empArmed = false
	s.inventory = map[Powerup]int{
		PowerupSlowMo:  s.params.StartSlowMo,
		PowerupReverse: s.params.StartReverse,
		PowerupEMP:     s.params.StartEMP,
	}
	s.paused = false
	s.over = false
	s.won = false
	s.events = nil
	s.lastProgress = 0
	s.progressSent = false

	s.shooter = Shooter{
		Pos:     core.V(width/2, height/2),
		Angle:   -math.Pi / 2,
		Current: s.randomColor(),
		Next:    s.randomColor(),
	}
}

// Step advances the simulation by exactly one frame. It is a no-op while
// paused or after the level has ended.
func (s *Simulator) Step() {
	if s.paused || s.over {
		return
	}
	s.frames++
	if s.slowMoFrames > 0 {
		s.slowMoFrames--
	}
	if s.freezeFrames > 0 {
		s.freezeFrames--
	}
	if s.reverseFrames > 0 {
		s.reverseFrames--
	}

	s.stepPhysics()
	if !s.over {
		s.stepProjectiles()
	}
	s.updateParticles()
	s.reportProgress()
}

// Resize regenerates the path for a new viewport and rescales every marble
// offset by the length ratio, so relative positions along the track are
// preserved across terminal resizes.
func (s *Simulator) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	oldLen := s.path.TotalLength
	s.width = width
	s.height = height
	s.path = GeneratePath(s.level.Curve, width, height, s.params.PathSteps)
	s.shooter.Pos = core.V(width/2, height/2)

	if oldLen > 0 && s.path.TotalLength > 0 {
		scale := s.path.TotalLength / oldLen
		for i := range s.marbles {
			s.marbles[i].Offset *= scale
		}
	}
}

// Fire launches the loaded marble at the given aim angle, then advances
// the shooter queue. An armed EMP rides on this shot.
func (s *Simulator) Fire(angle float64) {
	if s.paused || s.over {
		return
	}
	s.shooter.Angle = angle
	p := Projectile{
		ID:    s.nextID,
		Pos:   s.shooter.Pos,
		Vel:   core.V(math.Cos(angle), math.Sin(angle)).Scale(s.params.ProjectileSpeed),
		Color: s.shooter.Current,
		EMP:   s.empArmed,
	}
	s.nextID++
	s.empArmed = false
	s.projectiles = append(s.projectiles, p)

	s.shooter.Current = s.shooter.Next
	s.shooter.Next = s.randomColor()
	s.emit(Event{Kind: EventSoundCue, Cue: CueFire})
}

// SwapColor exchanges the loaded and queued shooter colors.
func (s *Simulator) SwapColor() {
	if s.paused || s.over {
		return
	}
	s.shooter.Current, s.shooter.Next = s.shooter.Next, s.shooter.Current
	s.emit(Event{Kind: EventSoundCue, Cue: CueSwap})
}

// ActivatePowerup consumes one unit of the given powerup if available.
// SlowMo and Reverse start their frame timers; EMP arms the next shot.
func (s *Simulator) ActivatePowerup(p Powerup) {
	if s.paused || s.over || s.inventory[p] <= 0 {
		return
	}
	switch p {
	case PowerupSlowMo:
		s.slowMoFrames = s.params.SlowMoFrames
	case PowerupReverse:
		s.reverseFrames = s.params.ReverseFrames
	case PowerupEMP:
		if s.empArmed {
			return
		}
		s.empArmed = true
	}
	s.inventory[p]--
	s.emit(Event{Kind: EventPowerupConsumed, Powerup: p})
	s.spawnText(s.shooter.Pos, p.String()+"!")
}

// SetPaused freezes or resumes the simulation. A paused simulator mutates
// nothing, including powerup timers.
func (s *Simulator) SetPaused(paused bool) {
	if s.over {
		return
	}
	s.paused = paused
}

// gameOver ends the level exactly once.
func (s *Simulator) gameOver(won bool) {
	if s.over {
		return
	}
	s.over = true
	s.won = won
	cue := CueLoss
	if won {
		cue = CueWin
	}
	s.emit(Event{Kind: EventSoundCue, Cue: cue})
	s.emit(Event{Kind: EventGameOver, Won: won, Score: s.score})
}

// addScore applies a score delta and reports the new total.
func (s *Simulator) addScore(points int) {
	if points == 0 {
		return
	}
	s.score += points
	s.emit(Event{Kind: EventScoreChanged, Score: s.score})
}

// addCredits applies a credit delta and reports it.
func (s *Simulator) addCredits(credits int) {
	if credits == 0 {
		return
	}
	s.credits += credits
	s.emit(Event{Kind: EventCreditsEarned, Credits: credits})
}

// reportProgress emits the cleared percentage, throttled so the host only
// hears about meaningful changes.
func (s *Simulator) reportProgress() {
	p := s.Progress()
	if s.progressSent && math.Abs(p-s.lastProgress) < s.params.ProgressDelta {
		return
	}
	s.progressSent = true
	s.lastProgress = p
	s.emit(Event{Kind: EventProgressChanged, Progress: p})
}

// Progress returns the cleared percentage in [0, 100]: how much of the
// level quota is neither pending spawn nor still on the track.
func (s *Simulator) Progress() float64 {
	if s.level.SpawnCount <= 0 {
		return 0
	}
	remaining := s.level.SpawnCount - s.spawned + len(s.marbles)
	p := 100 * (1 - float64(remaining)/float64(s.level.SpawnCount))
	return core.ClampF(p, 0, 100)
}

// randomColor picks a uniform color from the level palette.
func (s *Simulator) randomColor() Color {
	if len(s.level.Palette) == 0 {
		return 0
	}
	return s.level.Palette[s.rng.Intn(len(s.level.Palette))]
}

// Accessors used by the presentation layer. Slices are the live backing
// stores; callers must not retain them across Steps.

func (s *Simulator) Path() Path                 { return s.path }
func (s *Simulator) Marbles() []Marble          { return s.marbles }
func (s *Simulator) Projectiles() []Projectile  { return s.projectiles }
func (s *Simulator) Particles() []Particle      { return s.particles }
func (s *Simulator) Texts() []FloatingText      { return s.texts }
func (s *Simulator) Shooter() Shooter           { return s.shooter }
func (s *Simulator) Score() int                 { return s.score }
func (s *Simulator) Credits() int               { return s.credits }
func (s *Simulator) Streak() int                { return s.streak }
func (s *Simulator) Frames() int                { return s.frames }
func (s *Simulator) Level() Level               { return s.level }
func (s *Simulator) Paused() bool               { return s.paused }
func (s *Simulator) Over() (done, won bool)     { return s.over, s.won }
func (s *Simulator) EMPArmed() bool             { return s.empArmed }
func (s *Simulator) SlowMoActive() bool         { return s.slowMoFrames > 0 }
func (s *Simulator) Frozen() bool               { return s.freezeFrames > 0 }
func (s *Simulator) ReverseActive() bool        { return s.reverseFrames > 0 }
func (s *Simulator) PowerupCount(p Powerup) int { return s.inventory[p] }
func (s *Simulator) Radius() float64            { return s.params.Radius }
