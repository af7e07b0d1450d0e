// Package config provides YAML-based configuration loading for the safezone
// game: gameplay tuning and the sprite/animation sheet.
package config

import "time"

// Config contains all configuration for the safezone game.
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Timing    TimingConfig    `yaml:"timing"`
	Session   SessionConfig   `yaml:"session"`
	SafeZone  SafeZoneConfig  `yaml:"safe_zone"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

// ArenaConfig defines the logical play field in pixels.
// The renderer scales it to whatever terminal size is available.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig holds phase durations and cadences in milliseconds.
type TimingConfig struct {
	TimerMs         int `yaml:"timer_ms"`
	ReadyMs         int `yaml:"ready_ms"`
	DeadMs          int `yaml:"dead_ms"`
	GameOverMs      int `yaml:"game_over_ms"`
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
}

// Timer returns the countdown length.
func (t TimingConfig) Timer() time.Duration { return ms(t.TimerMs) }

// Ready returns how long the ready banner is shown.
func (t TimingConfig) Ready() time.Duration { return ms(t.ReadyMs) }

// Dead returns how long the death banner is shown.
func (t TimingConfig) Dead() time.Duration { return ms(t.DeadMs) }

// GameOver returns how long the game-over banner is shown.
func (t TimingConfig) GameOver() time.Duration { return ms(t.GameOverMs) }

// SpawnInterval returns the minimum time between two enemy spawns.
func (t TimingConfig) SpawnInterval() time.Duration { return ms(t.SpawnIntervalMs) }

// Reset targets for SessionConfig.ResetTo.
const (
	ResetToReady   = "ready"
	ResetToRunning = "running"
)

// SessionConfig defines lives and the post-round flow.
type SessionConfig struct {
	Lives      int    `yaml:"lives"`
	ResetTo    string `yaml:"reset_to"`    // "ready" or "running"
	WonConfirm bool   `yaml:"won_confirm"` // WON waits for the confirm key
}

// SafeZoneConfig defines the circle the player must stay inside.
type SafeZoneConfig struct {
	CenterX      float64 `yaml:"center_x"`
	CenterY      float64 `yaml:"center_y"`
	Radius       float64 `yaml:"radius"`
	PlayerRadius float64 `yaml:"player_radius"`
}

// HitboxConfig is a collidable rectangle relative to an agent's position.
type HitboxConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed        float64      `yaml:"speed"` // Pixels per tick
	SpriteSize   float64      `yaml:"sprite_size"`
	Hitbox       HitboxConfig `yaml:"hitbox"`
	AnimationKey string       `yaml:"animation_key"`
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Speed                float64      `yaml:"speed"` // Pixels per tick
	SpriteSize           float64      `yaml:"sprite_size"`
	Hitbox               HitboxConfig `yaml:"hitbox"`
	SpawnOffset          float64      `yaml:"spawn_offset"`
	DespawnOffset        float64      `yaml:"despawn_offset"`
	DirectionProbability float64      `yaml:"direction_probability"` // Chance of moving right
}

// AnimationConfig defines animation cadence.
type AnimationConfig struct {
	FrameMs int `yaml:"frame_ms"`
}

// Frame returns the interval between two animation frames.
func (a AnimationConfig) Frame() time.Duration { return ms(a.FrameMs) }

// InputConfig tunes terminal key handling.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms"` // How long a press counts as held without a repeat
}

// Hold returns the key hold window.
func (i InputConfig) Hold() time.Duration { return ms(i.HoldMs) }

// AudioConfig defines sound settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
	SampleRate   int     `yaml:"sample_rate"`
}

// AnimationSheet is the terminal equivalent of a sprite sheet: a flat list of
// frames plus, per animation key, the ordered frame indices of each sequence.
type AnimationSheet struct {
	Frames     []FrameConfig      `yaml:"frames"`
	Animations map[string][][]int `yaml:"animations"`
	Sprites    map[string]int     `yaml:"sprites"` // Named single-frame sprites
}

// FrameConfig is one glyph frame of the sheet.
type FrameConfig struct {
	Rows  []string `yaml:"rows"`
	Color string   `yaml:"color"`
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
