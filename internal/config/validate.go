package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0,
		"arena: size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)

	check(c.Timing.TimerMs > 0, "timing: timer_ms must be positive, got %d", c.Timing.TimerMs)
	check(c.Timing.ReadyMs >= 0, "timing: ready_ms must not be negative, got %d", c.Timing.ReadyMs)
	check(c.Timing.DeadMs >= 0, "timing: dead_ms must not be negative, got %d", c.Timing.DeadMs)
	check(c.Timing.GameOverMs >= 0, "timing: game_over_ms must not be negative, got %d", c.Timing.GameOverMs)
	check(c.Timing.SpawnIntervalMs > 0, "timing: spawn_interval_ms must be positive, got %d", c.Timing.SpawnIntervalMs)

	check(c.Session.Lives > 0, "session: lives must be positive, got %d", c.Session.Lives)
	check(c.Session.ResetTo == ResetToReady || c.Session.ResetTo == ResetToRunning,
		"session: reset_to must be %q or %q, got %q", ResetToReady, ResetToRunning, c.Session.ResetTo)

	check(c.SafeZone.Radius > c.SafeZone.PlayerRadius,
		"safe_zone: radius %v must exceed player_radius %v", c.SafeZone.Radius, c.SafeZone.PlayerRadius)
	check(c.SafeZone.PlayerRadius >= 0, "safe_zone: player_radius must not be negative")

	check(c.Player.Speed >= 0, "player: speed must not be negative, got %v", c.Player.Speed)
	check(c.Player.SpriteSize >= 0 && c.Player.SpriteSize <= c.Arena.Width && c.Player.SpriteSize <= c.Arena.Height,
		"player: sprite_size %v does not fit the arena", c.Player.SpriteSize)
	check(c.Player.AnimationKey != "", "player: animation_key must be set")
	errs = append(errs, c.Player.Hitbox.validate("player")...)

	check(c.Enemy.Speed > 0, "enemy: speed must be positive, got %v", c.Enemy.Speed)
	check(c.Enemy.DirectionProbability >= 0 && c.Enemy.DirectionProbability <= 1,
		"enemy: direction_probability must be within [0, 1], got %v", c.Enemy.DirectionProbability)
	check(c.Enemy.SpriteSize <= 2*c.SafeZone.Radius,
		"enemy: sprite_size %v does not fit the safe band", c.Enemy.SpriteSize)
	errs = append(errs, c.Enemy.Hitbox.validate("enemy")...)

	check(c.Animation.FrameMs > 0, "animation: frame_ms must be positive, got %d", c.Animation.FrameMs)
	check(c.Input.HoldMs >= 0, "input: hold_ms must not be negative, got %d", c.Input.HoldMs)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1,
		"audio: master_volume must be within [0, 1], got %v", c.Audio.MasterVolume)

	return errors.Join(errs...)
}

func (h HitboxConfig) validate(owner string) []error {
	var errs []error
	if h.Width < 0 || h.Height < 0 {
		errs = append(errs, fmt.Errorf("%s: hitbox size must not be negative, got %vx%v", owner, h.Width, h.Height))
	}
	return errs
}

// Validate checks that every sequence and sprite references an existing frame.
func (s AnimationSheet) Validate() error {
	var errs []error
	for key, seqs := range s.Animations {
		for i, seq := range seqs {
			for _, idx := range seq {
				if idx < 0 || idx >= len(s.Frames) {
					errs = append(errs, fmt.Errorf("animations: %s[%d] references missing frame %d", key, i, idx))
				}
			}
		}
	}
	for name, idx := range s.Sprites {
		if idx < 0 || idx >= len(s.Frames) {
			errs = append(errs, fmt.Errorf("sprites: %s references missing frame %d", name, idx))
		}
	}
	return errors.Join(errs...)
}
