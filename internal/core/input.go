package core

import "time"

// Key represents a semantic key, abstracted from physical key presses.
type Key int

const (
	KeyNone    Key = iota
	KeyUp          // W, Up arrow
	KeyDown        // S, Down arrow
	KeyLeft        // A, Left arrow
	KeyRight       // D, Right arrow
	KeyConfirm     // Enter, Space - start game / acknowledge win
	KeyPause       // P - pause/unpause
	KeyQuit        // Q, Ctrl+C - exit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyConfirm:
		return "Confirm"
	case KeyPause:
		return "Pause"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// opposite returns the key on the same movement axis pointing the other way.
func (k Key) opposite() Key {
	switch k {
	case KeyUp:
		return KeyDown
	case KeyDown:
		return KeyUp
	case KeyLeft:
		return KeyRight
	case KeyRight:
		return KeyLeft
	default:
		return KeyNone
	}
}

// KeyState tracks which keys are currently held.
//
// Terminals report presses (and auto-repeats) but no releases, so a key counts
// as held until holdWindow passes without a new press for it. A zero window
// keeps keys held until Release or ClearKey is called.
type KeyState struct {
	holdWindow time.Duration
	pressedAt  map[Key]time.Duration
}

// NewKeyState creates an empty key state with the given hold window.
func NewKeyState(holdWindow time.Duration) *KeyState {
	return &KeyState{
		holdWindow: holdWindow,
		pressedAt:  make(map[Key]time.Duration),
	}
}

// Press records a key press at time now.
// Pressing a direction releases the opposite direction on the same axis.
func (s *KeyState) Press(k Key, now time.Duration) {
	if k == KeyNone {
		return
	}
	if opp := k.opposite(); opp != KeyNone {
		delete(s.pressedAt, opp)
	}
	s.pressedAt[k] = now
}

// Release marks a key as no longer held.
func (s *KeyState) Release(k Key) {
	delete(s.pressedAt, k)
}

// Advance expires keys whose last press is older than the hold window.
func (s *KeyState) Advance(now time.Duration) {
	if s.holdWindow <= 0 {
		return
	}
	for k, at := range s.pressedAt {
		if now-at > s.holdWindow {
			delete(s.pressedAt, k)
		}
	}
}

// IsKeyPressed returns true if the key is currently held.
func (s *KeyState) IsKeyPressed(k Key) bool {
	_, ok := s.pressedAt[k]
	return ok
}

// ClearKey consumes a key so one press is acted on only once.
func (s *KeyState) ClearKey(k Key) {
	delete(s.pressedAt, k)
}

// Reset releases every key.
func (s *KeyState) Reset() {
	for k := range s.pressedAt {
		delete(s.pressedAt, k)
	}
}

// MovementVector derives the movement intent from held direction keys.
// Each axis is -1, 0 or +1; opposing keys on one axis cancel out.
func (s *KeyState) MovementVector() Vec {
	var v Vec
	if s.IsKeyPressed(KeyLeft) {
		v.X--
	}
	if s.IsKeyPressed(KeyRight) {
		v.X++
	}
	if s.IsKeyPressed(KeyUp) {
		v.Y--
	}
	if s.IsKeyPressed(KeyDown) {
		v.Y++
	}
	return v
}

// Input is the read side of a key state as games consume it.
type Input interface {
	IsKeyPressed(k Key) bool
	MovementVector() Vec
	ClearKey(k Key)
}

// SoundSink receives named sound events. Enqueue must not block.
type SoundSink interface {
	Enqueue(name string)
}
