// Package safezone implements the Safe Zone game: survive the countdown inside
// a circular safe zone while enemies sweep across the arena.
//
// The package holds the simulation core (agents, collisions, the per-tick
// update and the phase machine) plus a terminal renderer. It never reads the
// clock itself; every entry point takes the tick timestamp from its caller.
package safezone

import (
	"time"

	"github.com/vovakirdan/safezone/internal/core"
)

// Hitbox is a collidable rectangle expressed relative to its agent's position.
type Hitbox struct {
	X, Y          float64 // Offset from the agent position
	Width, Height float64 // Never negative
}

// NewHitbox creates a hitbox, clamping negative sizes to zero.
func NewHitbox(x, y, width, height float64) *Hitbox {
	return &Hitbox{
		X:      x,
		Y:      y,
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

// Bounds returns the absolute rectangle of the hitbox for an agent at (x, y).
func (h *Hitbox) Bounds(x, y float64) core.Rect {
	return core.NewRect(x+h.X, y+h.Y, h.Width, h.Height)
}

// Agent is any simulated entity that takes part in updates and collisions.
type Agent interface {
	// Position returns the agent's top-left anchor in arena pixels.
	Position() (x, y float64)

	// Active reports whether the agent is still alive. Inactive agents are
	// removed from the roster at the end of the tick.
	Active() bool

	// Hitbox returns the collidable region, or nil for agents that never collide.
	Hitbox() *Hitbox

	// Update advances the agent by one tick.
	Update(now time.Duration)

	// Draw attaches the agent to a presentation container. Attaching twice is a no-op.
	Draw(c Container)

	// Destroy detaches the agent from its container, if any.
	Destroy()
}

// Bounds returns the agent's absolute hitbox rectangle.
// ok is false when the agent has no hitbox.
func Bounds(a Agent) (r core.Rect, ok bool) {
	hb := a.Hitbox()
	if hb == nil {
		return core.Rect{}, false
	}
	x, y := a.Position()
	return hb.Bounds(x, y), true
}

// Intersects reports whether two agents' hitboxes overlap with positive area.
// Agents without a hitbox never intersect anything.
func Intersects(a, b Agent) bool {
	ra, ok := Bounds(a)
	if !ok {
		return false
	}
	rb, ok := Bounds(b)
	if !ok {
		return false
	}
	return ra.Intersects(rb)
}

// body holds the state shared by every agent kind.
type body struct {
	x, y     float64
	active   bool
	hitbox   *Hitbox
	attached Container
}

func newBody(x, y float64, hb *Hitbox) body {
	return body{x: x, y: y, active: true, hitbox: hb}
}

func (b *body) Position() (float64, float64) { return b.x, b.y }

func (b *body) Active() bool { return b.active }

func (b *body) Hitbox() *Hitbox { return b.hitbox }

// attach adds self to c unless it is already there.
func (b *body) attach(self Agent, c Container) {
	if c == nil {
		return
	}
	if !c.Contains(self) {
		c.Add(self)
	}
	b.attached = c
}

// detach removes self from the container it was drawn into.
func (b *body) detach(self Agent) {
	if b.attached == nil {
		return
	}
	b.attached.Remove(self)
	b.attached = nil
}
