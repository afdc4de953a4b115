package sim

import "github.com/arcadekit/marblestorm/internal/core"

// EventKind identifies an outbound simulation event.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventProgressChanged
	EventCreditsEarned
	EventPowerupConsumed
	EventGameOver
	EventParticleBurst
	EventFloatingText
	EventSoundCue
	EventShake
)

// SoundCue names a sound effect the host may play (or ignore).
type SoundCue string

const (
	CueFire   SoundCue = "fire"
	CueSwap   SoundCue = "swap"
	CueInsert SoundCue = "insert"
	CueMatch  SoundCue = "match"
	CueBomb   SoundCue = "bomb"
	CueCoin   SoundCue = "coin"
	CueIce    SoundCue = "ice"
	CueMiss   SoundCue = "miss"
	CueWin    SoundCue = "win"
	CueLoss   SoundCue = "loss"
)

// Event is a single host-facing notification. Events are buffered in an
// outbox during Step and drained by the host afterwards, so delivery order
// is deterministic and no host callback runs mid-frame.
type Event struct {
	Kind EventKind

	Score    int     // EventScoreChanged, EventGameOver
	Progress float64 // EventProgressChanged, percent 0..100
	Credits  int     // EventCreditsEarned
	Powerup  Powerup // EventPowerupConsumed
	Won      bool    // EventGameOver

	Pos   core.Vec2 // EventParticleBurst, EventFloatingText
	Color Color     // EventParticleBurst
	Count int       // EventParticleBurst
	Text  string    // EventFloatingText
	Cue   SoundCue  // EventSoundCue
}

// emit appends an event to the outbox.
func (s *Simulator) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns all events emitted since the last drain and clears
// the outbox. Intended to be called by the host once per Step.
func (s *Simulator) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
