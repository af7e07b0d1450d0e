package safezone

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/safezone/internal/core"
)

// Input is the source of player intent: held keys and the movement vector.
type Input = core.Input

// SoundSink receives named sound events without waiting for playback.
type SoundSink = core.SoundSink

// Sound event names.
const (
	SoundHit         = "hit"
	SoundReadyState  = "ready-state"
	SoundWonState    = "won-state"
	SoundDiedState   = "died-state"
	SoundGameOver    = "game-over-state"
	SoundTitleScreen = "title-screen"
)

// SoundNames lists every event the game can enqueue.
var SoundNames = []string{
	SoundHit,
	SoundReadyState,
	SoundWonState,
	SoundDiedState,
	SoundGameOver,
	SoundTitleScreen,
}

var discardLogger = log.New(io.Discard)

// enqueue plays a sound if a sink is wired.
func enqueue(s SoundSink, name string) {
	if s != nil {
		s.Enqueue(name)
	}
}
