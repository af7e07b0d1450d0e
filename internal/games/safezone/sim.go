package safezone

import (
	"time"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

// Simulate runs one RUNNING tick: countdown, spawn, update, collisions, the
// safe zone check and reaping, in that order. It returns the transition the
// machine should apply, or nil.
//
// When the countdown expires and the player leaves the safe zone on the same
// tick, the later check wins and DEAD is returned.
func Simulate(st *State, env *Env, now time.Duration) *Transition {
	cfg := env.Config
	var tr *Transition

	if t := updateTimer(st, cfg.Timing, now); t != nil {
		tr = t
	}

	spawnEnemy(st, env, now)
	updateAgents(st, now)
	handleCollisions(st)

	if !InsideSafeZone(st.Player, cfg.SafeZone) {
		tr = &Transition{To: PhaseDead, ResetTimer: true}
	}

	removeInactive(st)

	return tr
}

func updateTimer(st *State, timing config.TimingConfig, now time.Duration) *Transition {
	st.Remaining = timing.Timer() - (now - st.TimerStart)
	if st.Remaining <= 0 {
		st.Display = 0
		return &Transition{To: PhaseWon, ResetTimer: true}
	}
	st.Display = st.Remaining
	return nil
}

func spawnEnemy(st *State, env *Env, now time.Duration) {
	if now-st.LastSpawn < env.Config.Timing.SpawnInterval() {
		return
	}
	cfg := env.Config
	e := NewEnemy(env.Rand, cfg.Enemy, cfg.SafeZone, cfg.Arena.Width, env.Anims)
	st.Entities = append(st.Entities, e)
	e.Draw(env.Container)
	st.LastSpawn = now
}

// updateAgents updates the roster as it stood when the pass began. Agents
// deactivated mid-pass stay in place until removeInactive runs.
func updateAgents(st *State, now time.Duration) {
	n := len(st.Entities)
	for i := 0; i < n; i++ {
		st.Entities[i].Update(now)
	}
}

// handleCollisions pushes the player out of every overlapping enemy along
// the enemy's direction of travel.
func handleCollisions(st *State) {
	p := st.Player
	if p == nil {
		return
	}

	hit := false
	for _, a := range st.Entities {
		if a == Agent(p) {
			continue
		}
		e, ok := a.(*Enemy)
		if !ok || !Intersects(p, e) {
			continue
		}
		hit = true

		eb, _ := Bounds(e)
		phb := p.Hitbox()
		if e.Direction() == DirectionLeft {
			p.setX(eb.X - phb.X - phb.Width)
		} else {
			p.setX(eb.Right() - phb.X)
		}
	}

	p.HandleHit(hit)
}

// InsideSafeZone reports whether the player's hitbox center, widened by the
// player radius, lies within the safe circle. A player without a hitbox is
// never inside.
func InsideSafeZone(p *Player, sz config.SafeZoneConfig) bool {
	if p == nil {
		return false
	}
	r, ok := Bounds(p)
	if !ok {
		return false
	}
	cx, cy := r.Center()
	return core.Distance(cx, cy, sz.CenterX, sz.CenterY)+sz.PlayerRadius <= sz.Radius
}

func removeInactive(st *State) {
	kept := st.Entities[:0]
	for _, a := range st.Entities {
		if a.Active() {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(st.Entities); i++ {
		st.Entities[i] = nil
	}
	st.Entities = kept
}

// clearEnemies destroys every enemy and drops it from the roster.
func clearEnemies(st *State) {
	kept := st.Entities[:0]
	for _, a := range st.Entities {
		if e, ok := a.(*Enemy); ok {
			e.Destroy()
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(st.Entities); i++ {
		st.Entities[i] = nil
	}
	st.Entities = kept
}
