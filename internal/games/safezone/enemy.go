package safezone

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

// Horizontal travel directions.
const (
	DirectionRight = 1
	DirectionLeft  = -1
)

// fallbackEnemySprite is drawn when the sheet has no enemy sprite.
var fallbackEnemySprite = &core.Sprite{Rows: []string{"●"}, Color: core.ColorRed}

// Enemy crosses the arena horizontally at constant speed, then deactivates.
type Enemy struct {
	body

	direction     int
	speed         float64
	despawnOffset float64
	arenaW        float64
	sprite        *core.Sprite
}

// NewEnemy spawns an enemy just outside the left or right arena edge, at a
// random height within the band the safe zone spans.
func NewEnemy(rng *rand.Rand, cfg config.EnemyConfig, safe config.SafeZoneConfig, arenaW float64, anims *Animations) *Enemy {
	half := cfg.SpriteSize / 2
	minY := safe.CenterY - safe.Radius + half
	maxY := safe.CenterY + safe.Radius - half
	y := minY + rng.Float64()*(maxY-minY)

	direction := DirectionLeft
	if rng.Float64() < cfg.DirectionProbability {
		direction = DirectionRight
	}

	x := arenaW + cfg.SpawnOffset
	spriteName := "enemy_left"
	if direction == DirectionRight {
		x = -cfg.SpawnOffset
		spriteName = "enemy_right"
	}

	sprite := anims.Sprite(spriteName)
	if sprite == nil {
		sprite = fallbackEnemySprite
	}

	hb := cfg.Hitbox
	return &Enemy{
		body:          newBody(x, y, NewHitbox(hb.X, hb.Y, hb.Width, hb.Height)),
		direction:     direction,
		speed:         cfg.Speed,
		despawnOffset: cfg.DespawnOffset,
		arenaW:        arenaW,
		sprite:        sprite,
	}
}

// Update moves the enemy one step and retires it once it leaves the arena.
func (e *Enemy) Update(_ time.Duration) {
	if !e.active {
		return
	}

	e.x += float64(e.direction) * e.speed

	if e.x < -e.despawnOffset || e.x > e.arenaW+e.despawnOffset {
		e.active = false
		e.Destroy()
	}
}

// Draw attaches the enemy to c.
func (e *Enemy) Draw(c Container) {
	e.attach(e, c)
}

// Destroy detaches the enemy from its container.
func (e *Enemy) Destroy() {
	e.detach(e)
}

// Direction returns +1 when moving right and -1 when moving left.
func (e *Enemy) Direction() int { return e.direction }

// Texture returns the enemy glyph.
func (e *Enemy) Texture() *core.Sprite { return e.sprite }
