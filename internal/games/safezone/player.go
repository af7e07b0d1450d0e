package safezone

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

// Player is the agent controlled through Input.
type Player struct {
	body

	input  Input
	sounds SoundSink
	anims  *Animations

	animKey    string
	speed      float64 // Pixels per tick
	spriteSize float64
	arenaW     float64
	arenaH     float64

	direction Direction
	motion    Motion
	hit       bool
	texture   *core.Sprite
}

// NewPlayer creates a player at (x, y) facing down.
// input, sounds and anims may be nil; the player then stands still, stays
// silent or keeps its initial texture respectively.
func NewPlayer(x, y float64, cfg config.PlayerConfig, arena config.ArenaConfig, input Input, sounds SoundSink, anims *Animations) *Player {
	hb := cfg.Hitbox
	return &Player{
		body:       newBody(x, y, NewHitbox(hb.X, hb.Y, hb.Width, hb.Height)),
		input:      input,
		sounds:     sounds,
		anims:      anims,
		animKey:    cfg.AnimationKey,
		speed:      cfg.Speed,
		spriteSize: cfg.SpriteSize,
		arenaW:     arena.Width,
		arenaH:     arena.Height,
		direction:  DirDown,
		motion:     MotionStanding,
	}
}

// Update reads the movement intent, refreshes facing and animation, then moves
// the player, keeping the sprite fully inside the arena.
func (p *Player) Update(now time.Duration) {
	if p.input == nil {
		return
	}

	mv := p.input.MovementVector()

	// Horizontal intent wins the facing over vertical.
	switch {
	case mv.X > 0:
		p.direction = DirRight
	case mv.X < 0:
		p.direction = DirLeft
	case mv.Y > 0:
		p.direction = DirDown
	case mv.Y < 0:
		p.direction = DirUp
	}

	if mv.IsZero() {
		p.motion = MotionStanding
	} else {
		p.motion = MotionWalking
	}

	p.animate(now)

	half := p.spriteSize / 2
	newX := core.ClampF(p.x+float64(mv.X)*p.speed, half, p.arenaW-half)
	newY := core.ClampF(p.y+float64(mv.Y)*p.speed, half, p.arenaH-half)

	p.x = math.Round(newX)
	p.y = math.Round(newY)
}

// animate refreshes the texture. An unknown animation key is a wiring bug and panics.
func (p *Player) animate(now time.Duration) {
	if p.anims == nil {
		return
	}
	tex, err := p.anims.Update(now, p.direction, p.motion, p.animKey)
	if err != nil {
		panic(fmt.Sprintf("safezone: player animation: %v", err))
	}
	if tex != nil {
		p.texture = tex
	}
}

// HandleHit records whether the player overlaps an enemy this tick.
// The hit sound fires only when contact begins.
func (p *Player) HandleHit(wasHit bool) {
	if !wasHit {
		p.hit = false
		return
	}
	if !p.hit {
		p.hit = true
		enqueue(p.sounds, SoundHit)
	}
}

// Reset moves the player to (x, y) and restores the standing-down pose.
func (p *Player) Reset(x, y float64, now time.Duration) {
	p.x, p.y = x, y
	p.direction = DirDown
	p.motion = MotionStanding
	p.hit = false
	p.animate(now)
}

// Draw attaches the player to c.
func (p *Player) Draw(c Container) {
	p.attach(p, c)
}

// Destroy detaches the player from its container.
func (p *Player) Destroy() {
	p.detach(p)
}

// Direction returns the facing direction.
func (p *Player) Direction() Direction { return p.direction }

// Motion returns the motion state.
func (p *Player) Motion() Motion { return p.motion }

// IsHit reports whether the player currently overlaps an enemy.
func (p *Player) IsHit() bool { return p.hit }

// Texture returns the current animation frame, or nil before the first one.
func (p *Player) Texture() *core.Sprite { return p.texture }

// setX moves the player horizontally, used by collision push-out.
func (p *Player) setX(x float64) { p.x = x }

// shiftAnimation moves the animation timer anchor forward by d.
func (p *Player) shiftAnimation(d time.Duration) {
	if p.anims != nil {
		p.anims.Shift(d)
	}
}
