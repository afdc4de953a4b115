// Package marble implements the marble-shooter game modes on top of the
// pure simulation in internal/sim. It maps platform input to simulator
// intents, drains the simulator's event outbox, and renders to the cell
// buffer. The simulation itself never touches the terminal.
package marble

import (
	"math"

	"github.com/arcadekit/marblestorm/internal/config"
	"github.com/arcadekit/marblestorm/internal/core"
	"github.com/arcadekit/marblestorm/internal/registry"
	"github.com/arcadekit/marblestorm/internal/sim"
)

// GameState constants
const (
	StatePlaying    = "playing"
	StatePaused     = "paused"
	StateLevelClear = "levelclear" // waiting for the player to continue
	StateGameOver   = "gameover"
	StateWin        = "win" // campaign completed
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // play through the catalog, win at end
	ModeEndless                  // cycle the catalog forever
)

// aimStep is the shooter rotation per held tick, in radians.
const aimStep = 0.07

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the 0-based level to start at, set via CLI
var startLevel int

// curveOverride replaces the level curve when set via CLI
var curveOverride sim.CurveType

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the 0-based level to start at.
func SetStartLevel(index int) {
	startLevel = index
}

// SetCurve overrides the track curve for every level.
func SetCurve(curve sim.CurveType) {
	curveOverride = curve
}

// Game adapts the marble simulation to the platform's Game interface.
type Game struct {
	mode GameMode

	sim        *sim.Simulator
	runtime    core.RuntimeConfig
	cfg        config.MarbleConfig
	difficulty *config.DifficultyManager

	state        string
	levelIndex   int
	endlessCycle int
	carriedScore int // score banked from completed levels
	credits      int // session credits accumulated from events
	tickCount    int

	aim      float64
	progress float64
	shake    int // frames of screen shake left

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign-mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless-mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "marble_endless"
	}
	return "marble"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Marble Storm (Endless)"
	}
	return "Marble Storm"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMarble(configPath)
	if err != nil {
		cfg = config.DefaultMarbleConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMarblePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.state = StatePlaying
	g.levelIndex = startLevel
	if g.levelIndex >= LevelCount() {
		g.levelIndex = LevelCount() - 1
	}
	g.endlessCycle = 0
	g.carriedScore = 0
	g.credits = 0
	g.tickCount = 0
	g.aim = -math.Pi / 2
	g.progress = 0
	g.shake = 0

	g.sim = sim.NewSimulator(g.buildParams(), runtime.Seed)
	g.startCurrentLevel()
}

// buildParams maps the yaml config onto simulation tunables, folding in
// the current difficulty level.
func (g *Game) buildParams() sim.Params {
	return sim.Params{
		Radius:    g.cfg.Physics.MarbleRadius,
		PathSteps: g.cfg.Path.Steps,

		SpawnGapFactor: g.cfg.Spawn.GapFactor,
		SpecialChance:  g.cfg.Spawn.SpecialChance,
		LuckBonus:      g.cfg.Spawn.LuckBonus + g.difficulty.LuckBonus(g.totalScore(), g.tickCount),
		EnableIce:      g.cfg.Spawn.EnableIce,
		EnableCoin:     g.cfg.Spawn.EnableCoin,

		BaseSpeed:      g.cfg.Physics.BaseSpeed,
		RampRate:       g.cfg.Physics.RampRate,
		RampCap:        g.cfg.Physics.RampCap,
		PullRate:       g.cfg.Physics.PullRate,
		MaxPullSpeed:   g.cfg.Physics.MaxPullSpeed,
		ReverseForce:   g.cfg.Physics.ReverseForce,
		ChainTolerance: g.cfg.Physics.ChainTolerance,

		ProjectileSpeed: g.cfg.Physics.ProjectileSpeed,
		ProximityFactor: g.cfg.Physics.ProximityFactor,

		PointsPerMarble:  g.cfg.Scoring.PointsPerMarble,
		ScoreMultiplier:  g.cfg.Scoring.ScoreMultiplier,
		ComboMultiplier:  g.cfg.Scoring.ComboMultiplier,
		StreakStep:       g.cfg.Scoring.StreakStep,
		CreditsPerMarble: g.cfg.Scoring.CreditsPerMarble,
		ComboCreditBonus: g.cfg.Scoring.ComboCreditBonus,
		CoinValue:        g.cfg.Scoring.CoinValue,

		BombRadiusFactor: g.cfg.Powerups.BombRadiusFactor,
		EMPRadiusFactor:  g.cfg.Powerups.EMPRadiusFactor,
		IceFreezeFrames:  g.cfg.Powerups.IceFreezeFrames,
		SlowMoFrames:     g.cfg.Powerups.SlowMoFrames,
		SlowMoScale:      g.cfg.Powerups.SlowMoScale,
		ReverseFrames:    g.cfg.Powerups.ReverseFrames,
		StartSlowMo:      g.cfg.Powerups.StartSlowMo,
		StartReverse:     g.cfg.Powerups.StartReverse,
		StartEMP:         g.cfg.Powerups.StartEMP,

		ParticleLife: g.cfg.Effects.ParticleLife,
		TextLife:     g.cfg.Effects.TextLife,

		ProgressDelta: g.cfg.Effects.ProgressDelta,
	}
}

// currentLevelDef returns the active catalog entry.
func (g *Game) currentLevelDef() LevelDef {
	return GetLevel(g.levelIndex)
}

// startCurrentLevel feeds the catalog entry through difficulty scaling
// and starts the simulator on it.
func (g *Game) startCurrentLevel() {
	def := g.currentLevelDef()
	curve := def.Curve
	if curveOverride != "" {
		curve = curveOverride
	}

	speed := g.difficulty.Speed(def.SpeedMultiplier, g.totalScore(), g.tickCount)
	// Endless cycles keep accelerating past the catalog pace.
	speed *= 1 + 0.1*float64(g.endlessCycle)

	level := sim.Level{
		Name:            def.Name,
		Curve:           curve,
		Palette:         buildPalette(def.PaletteSize),
		SpawnCount:      g.difficulty.SpawnCount(def.SpawnCount, g.totalScore(), g.tickCount),
		SpeedMultiplier: speed,
	}

	// The simulation runs in world units where a cell is half as wide as
	// it is tall: world height is twice the rows, and the renderer halves
	// y when drawing. Circles stay circular on screen.
	g.sim.StartLevel(level, float64(g.runtime.ScreenW), float64(2*g.runtime.ScreenH))
	g.progress = 0
}

// advanceLevel banks the score and moves to the next catalog entry.
func (g *Game) advanceLevel() {
	g.carriedScore += g.sim.Score()
	g.levelIndex++
	if g.mode == ModeEndless && g.levelIndex >= LevelCount() {
		g.levelIndex = 0
		g.endlessCycle++
	}
	g.sim = sim.NewSimulator(g.buildParams(), g.runtime.Seed+int64(g.levelIndex)+int64(g.endlessCycle)*977)
	g.startCurrentLevel()
	g.state = StatePlaying
}

// Resize rescales the running simulation to a new viewport. Marble
// offsets are preserved relative to the track, so play continues.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
	if g.sim != nil {
		g.sim.Resize(float64(width), float64(2*height))
	}
}

// totalScore returns the banked score plus the running level score.
func (g *Game) totalScore() int {
	if g.sim == nil {
		return g.carriedScore
	}
	return g.carriedScore + g.sim.Score()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Level-clear interlude: wait for the player to continue.
	if g.state == StateLevelClear {
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
			g.sim.SetPaused(false)
		case StatePlaying:
			g.state = StatePaused
			g.sim.SetPaused(true)
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.handleInput(in)
	g.sim.Step()
	g.drainEvents()

	if done, won := g.sim.Over(); done && g.state == StatePlaying {
		if !won {
			g.state = StateGameOver
		} else if g.mode == ModeCampaign && g.levelIndex == LevelCount()-1 {
			g.carriedScore += g.sim.Score()
			g.state = StateWin
		} else {
			g.state = StateLevelClear
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput maps platform actions to simulator intents.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionAimLeft) {
		g.aim -= aimStep
	}
	if in.Has(core.ActionAimRight) {
		g.aim += aimStep
	}
	if in.Has(core.ActionFire) {
		g.sim.Fire(g.aim)
	}
	if in.Has(core.ActionSwap) {
		g.sim.SwapColor()
	}
	if in.Has(core.ActionSlowMo) {
		g.sim.ActivatePowerup(sim.PowerupSlowMo)
	}
	if in.Has(core.ActionReverse) {
		g.sim.ActivatePowerup(sim.PowerupReverse)
	}
	if in.Has(core.ActionEMP) {
		g.sim.ActivatePowerup(sim.PowerupEMP)
	}
}

// drainEvents consumes the simulator outbox. Scores and particles are
// read from the simulator directly; the events drive session credits,
// progress display and screen shake.
func (g *Game) drainEvents() {
	for _, e := range g.sim.DrainEvents() {
		switch e.Kind {
		case sim.EventCreditsEarned:
			g.credits += e.Credits
		case sim.EventProgressChanged:
			g.progress = e.Progress
		case sim.EventShake:
			g.shake = 6
		}
	}
	if g.shake > 0 {
		g.shake--
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.carriedScore
	if g.sim != nil && g.state != StateWin {
		score += g.sim.Score()
	}
	return core.GameState{
		Score:    score,
		Credits:  g.credits,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register("marble", func() registry.Game {
		return New()
	})
	registry.Register("marble_endless", func() registry.Game {
		return NewEndless()
	})
}
