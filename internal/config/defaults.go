package config

import (
	_ "embed"
)

//go:embed defaults/safezone.yaml
var defaultConfigYAML []byte

//go:embed defaults/animations.yaml
var defaultAnimationsYAML []byte

// DefaultConfig returns the default safezone configuration.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			TimerMs:         30000,
			ReadyMs:         1600,
			DeadMs:          800,
			GameOverMs:      1600,
			SpawnIntervalMs: 100,
		},
		Session: SessionConfig{
			Lives:      3,
			ResetTo:    ResetToReady,
			WonConfirm: true,
		},
		SafeZone: SafeZoneConfig{
			CenterX:      400,
			CenterY:      300,
			Radius:       230,
			PlayerRadius: 32,
		},
		Player: PlayerConfig{
			Speed:        3,
			SpriteSize:   64,
			Hitbox:       HitboxConfig{X: 16, Y: 16, Width: 32, Height: 32},
			AnimationKey: "player",
		},
		Enemy: EnemyConfig{
			Speed:                5,
			SpriteSize:           64,
			Hitbox:               HitboxConfig{X: 16, Y: 16, Width: 32, Height: 32},
			SpawnOffset:          64,
			DespawnOffset:        64,
			DirectionProbability: 0.5,
		},
		Animation: AnimationConfig{
			FrameMs: 200,
		},
		Input: InputConfig{
			HoldMs: 250,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
	}
}

// ClassicConfig returns the configuration of the earlier game flow: a reset
// goes straight back to running and a win restarts the round on its own.
func ClassicConfig() Config {
	cfg := DefaultConfig()
	cfg.Session.ResetTo = ResetToRunning
	cfg.Session.WonConfirm = false
	return cfg
}

// DefaultAnimationSheet returns a minimal built-in sheet: one plain glyph per
// player sequence and enemy direction. Used when no sheet can be loaded.
func DefaultAnimationSheet() AnimationSheet {
	return AnimationSheet{
		Frames: []FrameConfig{
			{Rows: []string{"@"}, Color: "bright_yellow"},
			{Rows: []string{"●"}, Color: "red"},
		},
		Animations: map[string][][]int{
			"player": {{0}, {0}, {0}, {0}, {0}, {0}, {0}, {0}},
		},
		Sprites: map[string]int{
			"enemy_right": 1,
			"enemy_left":  1,
		},
	}
}
