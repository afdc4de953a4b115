// Package config provides YAML-based game configuration loading and
// difficulty management for the marble shooter.
package config

import (
	_ "embed"
)

//go:embed defaults/marble.yaml
var defaultMarbleYAML []byte

// MarbleConfig contains all tunables for the marble shooter.
type MarbleConfig struct {
	Path       MarblePath       `yaml:"path"`
	Physics    MarblePhysics    `yaml:"physics"`
	Spawn      MarbleSpawn      `yaml:"spawn"`
	Scoring    MarbleScoring    `yaml:"scoring"`
	Powerups   MarblePowerups   `yaml:"powerups"`
	Effects    MarbleEffects    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MarblePath defines track generation parameters.
type MarblePath struct {
	Steps int `yaml:"steps"` // resampled polyline resolution
}

// MarblePhysics defines chain and projectile motion parameters.
type MarblePhysics struct {
	MarbleRadius    float64 `yaml:"marble_radius"`
	BaseSpeed       float64 `yaml:"base_speed"`
	RampRate        float64 `yaml:"ramp_rate"`
	RampCap         float64 `yaml:"ramp_cap"`
	PullRate        float64 `yaml:"pull_rate"`
	MaxPullSpeed    float64 `yaml:"max_pull_speed"`
	ReverseForce    float64 `yaml:"reverse_force"`
	ChainTolerance  float64 `yaml:"chain_tolerance"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProximityFactor float64 `yaml:"proximity_factor"`
}

// MarbleSpawn defines marble feeding and special-kind odds.
type MarbleSpawn struct {
	GapFactor     float64 `yaml:"gap_factor"`     // spawn clearance in diameters
	SpecialChance float64 `yaml:"special_chance"` // width of each special zone
	LuckBonus     float64 `yaml:"luck_bonus"`
	EnableIce     bool    `yaml:"enable_ice"`
	EnableCoin    bool    `yaml:"enable_coin"`
}

// MarbleScoring defines points, credits and streak growth.
type MarbleScoring struct {
	PointsPerMarble  int     `yaml:"points_per_marble"`
	ScoreMultiplier  float64 `yaml:"score_multiplier"`
	ComboMultiplier  float64 `yaml:"combo_multiplier"`
	StreakStep       float64 `yaml:"streak_step"`
	CreditsPerMarble int     `yaml:"credits_per_marble"`
	ComboCreditBonus int     `yaml:"combo_credit_bonus"`
	CoinValue        int     `yaml:"coin_value"`
}

// MarblePowerups defines special-marble effects and player abilities.
type MarblePowerups struct {
	BombRadiusFactor float64 `yaml:"bomb_radius_factor"`
	EMPRadiusFactor  float64 `yaml:"emp_radius_factor"`
	IceFreezeFrames  int     `yaml:"ice_freeze_frames"`
	SlowMoFrames     int     `yaml:"slowmo_frames"`
	SlowMoScale      float64 `yaml:"slowmo_scale"`
	ReverseFrames    int     `yaml:"reverse_frames"`
	StartSlowMo      int     `yaml:"start_slowmo"`
	StartReverse     int     `yaml:"start_reverse"`
	StartEMP         int     `yaml:"start_emp"`
}

// MarbleEffects defines presentation decay windows.
type MarbleEffects struct {
	ParticleLife  int     `yaml:"particle_life"`
	TextLife      int     `yaml:"text_life"`
	ProgressDelta float64 `yaml:"progress_delta"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to chain speed at max difficulty
	SpawnIncrease   int     `yaml:"spawn_increase"`   // Extra marbles fed per level at max difficulty
	LuckBonus       float64 `yaml:"luck_bonus"`       // Special-chance bonus at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// DefaultMarbleConfig returns the default marble shooter configuration.
func DefaultMarbleConfig() MarbleConfig {
	return MarbleConfig{
		Path: MarblePath{
			Steps: 256,
		},
		Physics: MarblePhysics{
			MarbleRadius:    1.0,
			BaseSpeed:       0.035,
			RampRate:        0.00001,
			RampCap:         2.0,
			PullRate:        0.06,
			MaxPullSpeed:    0.9,
			ReverseForce:    0.25,
			ChainTolerance:  0.15,
			ProjectileSpeed: 1.4,
			ProximityFactor: 1.8,
		},
		Spawn: MarbleSpawn{
			GapFactor:     2.1,
			SpecialChance: 0.02,
			LuckBonus:     0.0,
			EnableIce:     true,
			EnableCoin:    true,
		},
		Scoring: MarbleScoring{
			PointsPerMarble:  10,
			ScoreMultiplier:  1.0,
			ComboMultiplier:  1.5,
			StreakStep:       0.1,
			CreditsPerMarble: 1,
			ComboCreditBonus: 5,
			CoinValue:        10,
		},
		Powerups: MarblePowerups{
			BombRadiusFactor: 2.5,
			EMPRadiusFactor:  3.5,
			IceFreezeFrames:  180,
			SlowMoFrames:     240,
			SlowMoScale:      0.35,
			ReverseFrames:    90,
			StartSlowMo:      1,
			StartReverse:     1,
			StartEMP:         1,
		},
		Effects: MarbleEffects{
			ParticleLife:  24,
			TextLife:      45,
			ProgressDelta: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnIncrease:   20,
				LuckBonus:       0.02,
			},
		},
	}
}
