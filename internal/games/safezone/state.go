package safezone

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/safezone/internal/config"
)

// Phase is one state of the game machine.
type Phase int

const (
	PhaseTitleScreen Phase = iota
	PhaseReady
	PhaseRunning
	PhaseDead
	PhaseWon
	PhaseGameOver
	PhaseReset
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitleScreen:
		return "TITLE_SCREEN"
	case PhaseReady:
		return "READY"
	case PhaseRunning:
		return "RUNNING"
	case PhaseDead:
		return "DEAD"
	case PhaseWon:
		return "WON"
	case PhaseGameOver:
		return "GAME_OVER"
	case PhaseReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// Banner is the centered message currently shown over the arena.
type Banner int

const (
	BannerNone Banner = iota
	BannerReady
	BannerDead
	BannerWon
	BannerGameOver
)

// State is the per-session game context. It is owned by a Machine and handed
// by pointer to the phase handlers and the simulation tick.
//
// All timestamps are offsets on the driver's clock.
type State struct {
	Phase      Phase
	PhaseStart time.Duration
	Lives      int

	// Countdown. Remaining is the raw value and may be negative for one tick;
	// Display is what the HUD shows and is frozen at the last running value.
	Remaining  time.Duration
	Display    time.Duration
	TimerStart time.Duration

	LastSpawn time.Duration

	// Entities is the roster in spawn order. Player is always a member.
	Player   *Player
	Entities []Agent

	Paused     bool
	PauseStart time.Duration

	Banner       Banner
	ArenaVisible bool
}

// Enemies counts the hostile agents on the roster.
func (s *State) Enemies() int {
	n := 0
	for _, a := range s.Entities {
		if _, ok := a.(*Enemy); ok {
			n++
		}
	}
	return n
}

// Env bundles the read-only collaborators the simulation tick needs.
type Env struct {
	Config    config.Config
	Rand      *rand.Rand
	Anims     *Animations // Enemy sprites; may be nil
	Container Container   // Where spawned enemies attach; may be nil
}

// Transition is a phase change requested by the simulation tick.
type Transition struct {
	To         Phase
	ResetTimer bool // Restart the countdown anchor when applying
}
