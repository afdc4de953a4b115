package sim

// Powerup identifies a consumable player ability.
type Powerup int

const (
	PowerupSlowMo  Powerup = iota // halves chain speed for a while
	PowerupReverse                // pushes all chains backward for a while
	PowerupEMP                    // arms the next shot to detonate on contact
)

// String returns a short name for the powerup.
func (p Powerup) String() string {
	switch p {
	case PowerupSlowMo:
		return "slowmo"
	case PowerupReverse:
		return "reverse"
	case PowerupEMP:
		return "emp"
	default:
		return "unknown"
	}
}

// Params are the simulation tunables. They are plumbed in from the yaml
// config by the game layer; the simulator itself never reads files.
type Params struct {
	Radius    float64 // marble radius in screen units
	PathSteps int     // resampled path resolution

	// Spawning
	SpawnGapFactor float64 // min clearance at spawn, in diameters
	SpecialChance  float64 // per-tier special roll width, 0..1
	LuckBonus      float64 // additive bonus to SpecialChance
	EnableIce      bool
	EnableCoin     bool

	// Chain motion
	BaseSpeed      float64 // lead chain advance, offset units per frame
	RampRate       float64 // per-frame additive speed ramp
	RampCap        float64 // max ramp multiplier
	PullRate       float64 // backward pull fraction of gap per frame
	MaxPullSpeed   float64 // backward pull speed cap
	ReverseForce   float64 // backward speed while reverse powerup is active
	ChainTolerance float64 // extra gap allowed within one chain

	// Projectiles
	ProjectileSpeed float64
	ProximityFactor float64 // contact distance in radii (squared check)

	// Scoring
	PointsPerMarble  int
	ScoreMultiplier  float64
	ComboMultiplier  float64 // applied to chain-reaction matches
	StreakStep       float64 // score growth per streak level
	CreditsPerMarble int
	ComboCreditBonus int
	CoinValue        int

	// Specials and powerups, in frames where durations apply
	BombRadiusFactor float64 // blast radius in diameters
	EMPRadiusFactor  float64
	IceFreezeFrames  int
	SlowMoFrames     int
	SlowMoScale      float64
	ReverseFrames    int
	StartSlowMo      int // starting inventory
	StartReverse     int
	StartEMP         int

	// Presentation-facing decay windows
	ParticleLife int
	TextLife     int

	// Progression
	ProgressDelta float64 // min percent change before re-reporting
}

// DefaultParams returns tunables balanced for an 80x24 terminal viewport.
func DefaultParams() Params {
	return Params{
		Radius:    1.0,
		PathSteps: 256,

		SpawnGapFactor: 2.1,
		SpecialChance:  0.02,
		LuckBonus:      0,
		EnableIce:      true,
		EnableCoin:     true,

		BaseSpeed:      0.035,
		RampRate:       0.00001,
		RampCap:        2.0,
		PullRate:       0.06,
		MaxPullSpeed:   0.9,
		ReverseForce:   0.25,
		ChainTolerance: 0.15,

		ProjectileSpeed: 1.4,
		ProximityFactor: 1.8,

		PointsPerMarble:  10,
		ScoreMultiplier:  1.0,
		ComboMultiplier:  1.5,
		StreakStep:       0.1,
		CreditsPerMarble: 1,
		ComboCreditBonus: 5,
		CoinValue:        10,

		BombRadiusFactor: 2.5,
		EMPRadiusFactor:  3.5,
		IceFreezeFrames:  180,
		SlowMoFrames:     240,
		SlowMoScale:      0.35,
		ReverseFrames:    90,
		StartSlowMo:      1,
		StartReverse:     1,
		StartEMP:         1,

		ParticleLife: 24,
		TextLife:     45,

		ProgressDelta: 0.5,
	}
}

// Level describes one stage: track shape, palette, quota and pacing.
type Level struct {
	Name            string
	Curve           CurveType
	Palette         []Color
	SpawnCount      int     // total marbles fed into the level
	SpeedMultiplier float64 // scales BaseSpeed for this level
}
