package safezone

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

// Direction is the way the player faces.
type Direction int

const (
	DirDown Direction = iota
	DirRight
	DirLeft
	DirUp
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "DOWN"
	case DirRight:
		return "RIGHT"
	case DirLeft:
		return "LEFT"
	case DirUp:
		return "UP"
	default:
		return "UNKNOWN"
	}
}

// Motion is the player's motion state.
type Motion int

const (
	MotionStanding Motion = iota
	MotionWalking
)

// String returns the motion name.
func (m Motion) String() string {
	if m == MotionWalking {
		return "WALKING"
	}
	return "STANDING"
}

// ErrUnknownAnimation is returned for an animation key the sheet does not define.
var ErrUnknownAnimation = errors.New("safezone: unknown animation key")

// Base sequence index per facing direction; walking adds walkingOffset.
var directionBase = map[Direction]int{
	DirDown:  0,
	DirRight: 2,
	DirLeft:  4,
	DirUp:    6,
}

const walkingOffset = 1

// SequenceIndex maps a (direction, motion) pair to its sequence slot.
func SequenceIndex(d Direction, m Motion) int {
	idx := directionBase[d]
	if m == MotionWalking {
		idx += walkingOffset
	}
	return idx
}

// Animations resolves texture sequences and advances frames on a fixed cadence.
type Animations struct {
	sequences map[string][][]*core.Sprite
	sprites   map[string]*core.Sprite
	interval  time.Duration

	// Current sequence, identified by key and slot.
	currentKey   string
	currentIndex int
	frameIndex   int
	lastUpdate   time.Duration
}

// NewAnimations builds the animation set from a sheet. Sequence entries that
// reference a missing frame are skipped, the way a texture that fails to load
// is left out of its sequence.
func NewAnimations(sheet config.AnimationSheet, interval time.Duration, logger *log.Logger) *Animations {
	if logger == nil {
		logger = discardLogger
	}

	frames := make([]*core.Sprite, len(sheet.Frames))
	for i, f := range sheet.Frames {
		color, ok := core.ParseColor(f.Color)
		if !ok && f.Color != "" {
			logger.Warn("unknown frame color, using default", "frame", i, "color", f.Color)
		}
		frames[i] = &core.Sprite{Rows: f.Rows, Color: color}
	}

	frameAt := func(idx int) *core.Sprite {
		if idx < 0 || idx >= len(frames) {
			return nil
		}
		return frames[idx]
	}

	a := &Animations{
		sequences:    make(map[string][][]*core.Sprite, len(sheet.Animations)),
		sprites:      make(map[string]*core.Sprite, len(sheet.Sprites)),
		interval:     interval,
		currentIndex: -1,
	}

	for key, seqs := range sheet.Animations {
		resolved := make([][]*core.Sprite, len(seqs))
		for i, seq := range seqs {
			for _, idx := range seq {
				if sp := frameAt(idx); sp != nil {
					resolved[i] = append(resolved[i], sp)
				} else {
					logger.Warn("animation frame missing", "key", key, "sequence", i, "frame", idx)
				}
			}
		}
		a.sequences[key] = resolved
	}

	for name, idx := range sheet.Sprites {
		if sp := frameAt(idx); sp != nil {
			a.sprites[name] = sp
		} else {
			logger.Warn("sprite frame missing", "sprite", name, "frame", idx)
		}
	}

	return a
}

// Sequence returns the ordered textures for (key, direction, motion).
// The result is empty when the slot exists but holds no frames.
func (a *Animations) Sequence(key string, d Direction, m Motion) ([]*core.Sprite, error) {
	seqs, ok := a.sequences[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, key)
	}
	idx := SequenceIndex(d, m)
	if idx >= len(seqs) {
		return nil, nil
	}
	return seqs[idx], nil
}

// Update selects the sequence for the given state and returns the texture to
// show, or nil when the texture should not change this tick.
//
// Entering a new sequence shows its first frame immediately; after that the
// frame advances (wrapping) once per interval.
func (a *Animations) Update(now time.Duration, d Direction, m Motion, key string) (*core.Sprite, error) {
	seq, err := a.Sequence(key, d, m)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, nil
	}

	idx := SequenceIndex(d, m)
	if key != a.currentKey || idx != a.currentIndex {
		a.currentKey = key
		a.currentIndex = idx
		a.frameIndex = 0
		a.lastUpdate = now
		return seq[0], nil
	}

	if now-a.lastUpdate >= a.interval {
		a.lastUpdate = now
		a.frameIndex = (a.frameIndex + 1) % len(seq)
		return seq[a.frameIndex], nil
	}

	return nil, nil
}

// FrameIndex returns the position within the current sequence.
func (a *Animations) FrameIndex() int {
	return a.frameIndex
}

// Sprite returns a named single-frame sprite, or nil if the sheet lacks it.
func (a *Animations) Sprite(name string) *core.Sprite {
	if a == nil {
		return nil
	}
	return a.sprites[name]
}

// Shift moves the frame timer anchor forward by d.
func (a *Animations) Shift(d time.Duration) {
	a.lastUpdate += d
}
