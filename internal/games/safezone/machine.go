package safezone

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

// Options wires a Machine to its collaborators. Everything except Config is
// optional; an empty Sheet disables animation.
type Options struct {
	Config config.Config
	Sheet  config.AnimationSheet
	Seed   int64

	Input     Input
	Sounds    SoundSink
	Container Container
	Logger    *log.Logger
}

// Machine is the game phase machine. Drive it with Tick once per frame.
type Machine struct {
	cfg    config.Config
	env    Env
	st     State
	input  Input
	sounds SoundSink
	logger *log.Logger

	startX, startY float64

	changes []core.PhaseChange
}

// NewMachine creates a session on the title screen. now is the driver's
// current timestamp and becomes every anchor's starting value.
func NewMachine(opts Options, now time.Duration) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger
	}
	cfg := opts.Config

	// An empty sheet means no animation provider: the player keeps no
	// texture and enemies use the built-in glyph.
	var anims *Animations
	if len(opts.Sheet.Frames) > 0 {
		anims = NewAnimations(opts.Sheet, cfg.Animation.Frame(), logger)
	}

	m := &Machine{
		cfg: cfg,
		env: Env{
			Config:    cfg,
			Rand:      rand.New(rand.NewSource(opts.Seed)),
			Anims:     anims,
			Container: opts.Container,
		},
		input:  opts.Input,
		sounds: opts.Sounds,
		logger: logger,
		startX: cfg.Arena.Width / 2,
		startY: cfg.Arena.Height / 2,
	}

	player := NewPlayer(m.startX, m.startY, cfg.Player, cfg.Arena, opts.Input, opts.Sounds, anims)
	player.Reset(m.startX, m.startY, now)

	m.st = State{
		Phase:      PhaseTitleScreen,
		PhaseStart: now,
		Lives:      cfg.Session.Lives,
		Remaining:  cfg.Timing.Timer(),
		Display:    cfg.Timing.Timer(),
		TimerStart: now,
		LastSpawn:  now,
		Player:     player,
		Entities:   []Agent{player},
	}
	player.Draw(opts.Container)
	m.setArenaVisible(false)

	enqueue(m.sounds, SoundTitleScreen)

	return m
}

// Tick advances the machine by one frame. At most one transition is applied,
// except that RESET always resolves on the tick it is entered.
// A paused machine ignores ticks.
func (m *Machine) Tick(now time.Duration) {
	if m.st.Paused {
		return
	}

	switch m.st.Phase {
	case PhaseTitleScreen:
		m.handleTitleScreen(now)
	case PhaseReady:
		m.handleReady(now)
	case PhaseRunning:
		m.handleRunning(now)
	case PhaseDead:
		m.handleDead(now)
	case PhaseWon:
		m.handleWon(now)
	case PhaseGameOver:
		m.handleGameOver(now)
	case PhaseReset:
		m.handleReset(now)
		return
	}

	if m.st.Phase == PhaseReset {
		m.handleReset(now)
	}
}

func (m *Machine) handleTitleScreen(now time.Duration) {
	if !m.confirmed() {
		return
	}
	m.resetSession(now)
	m.setArenaVisible(true)
	m.st.Banner = BannerReady
	m.enter(PhaseReady, now)
	enqueue(m.sounds, SoundReadyState)
}

func (m *Machine) handleReady(now time.Duration) {
	if now-m.st.PhaseStart < m.cfg.Timing.Ready() {
		return
	}
	m.st.Banner = BannerNone
	m.restartTimer(now)
	m.st.LastSpawn = now
	m.enter(PhaseRunning, now)
}

func (m *Machine) handleRunning(now time.Duration) {
	tr := Simulate(&m.st, &m.env, now)
	if tr == nil {
		return
	}

	switch tr.To {
	case PhaseWon:
		m.st.Banner = BannerWon
		enqueue(m.sounds, SoundWonState)
	case PhaseDead:
		m.st.Lives--
		m.st.Banner = BannerDead
		enqueue(m.sounds, SoundDiedState)
	}

	if tr.ResetTimer {
		m.st.TimerStart = now
		m.st.Remaining = m.cfg.Timing.Timer()
	}

	m.enter(tr.To, now)
}

func (m *Machine) handleDead(now time.Duration) {
	if now-m.st.PhaseStart < m.cfg.Timing.Dead() {
		return
	}
	if m.st.Lives > 0 {
		m.st.Banner = BannerNone
		m.enter(PhaseReset, now)
		return
	}
	m.st.Banner = BannerGameOver
	m.enter(PhaseGameOver, now)
	enqueue(m.sounds, SoundGameOver)
}

func (m *Machine) handleWon(now time.Duration) {
	if !m.cfg.Session.WonConfirm {
		if now-m.st.PhaseStart >= m.cfg.Timing.Dead() {
			m.st.Banner = BannerNone
			m.enter(PhaseReset, now)
		}
		return
	}
	if !m.confirmed() {
		return
	}
	m.backToTitle(now)
}

func (m *Machine) handleGameOver(now time.Duration) {
	if now-m.st.PhaseStart < m.cfg.Timing.GameOver() {
		return
	}
	m.backToTitle(now)
}

func (m *Machine) handleReset(now time.Duration) {
	clearEnemies(&m.st)
	m.st.Player.Reset(m.startX, m.startY, now)
	m.restartTimer(now)
	m.st.LastSpawn = now

	if m.cfg.Session.ResetTo == config.ResetToRunning {
		m.st.Banner = BannerNone
		m.enter(PhaseRunning, now)
		return
	}
	m.st.Banner = BannerReady
	m.enter(PhaseReady, now)
	enqueue(m.sounds, SoundReadyState)
}

func (m *Machine) backToTitle(now time.Duration) {
	m.resetSession(now)
	m.st.Banner = BannerNone
	m.setArenaVisible(false)
	m.enter(PhaseTitleScreen, now)
	enqueue(m.sounds, SoundTitleScreen)
}

// resetSession restores lives, the countdown and the roster.
func (m *Machine) resetSession(now time.Duration) {
	m.st.Lives = m.cfg.Session.Lives
	clearEnemies(&m.st)
	m.st.Player.Reset(m.startX, m.startY, now)
	m.restartTimer(now)
	m.st.LastSpawn = now
}

func (m *Machine) restartTimer(now time.Duration) {
	m.st.TimerStart = now
	m.st.Remaining = m.cfg.Timing.Timer()
	m.st.Display = m.st.Remaining
}

// confirmed consumes a pending confirm key press.
func (m *Machine) confirmed() bool {
	if m.input == nil || !m.input.IsKeyPressed(core.KeyConfirm) {
		return false
	}
	m.input.ClearKey(core.KeyConfirm)
	return true
}

func (m *Machine) enter(p Phase, now time.Duration) {
	from := m.st.Phase
	m.st.Phase = p
	m.st.PhaseStart = now

	m.changes = append(m.changes, core.PhaseChange{
		From:      from.String(),
		To:        p.String(),
		Lives:     m.st.Lives,
		Remaining: m.st.Display.Milliseconds(),
		At:        now.Milliseconds(),
	})
	m.logger.Debug("phase change", "from", from, "to", p, "lives", m.st.Lives)
}

func (m *Machine) setArenaVisible(v bool) {
	m.st.ArenaVisible = v
	if l, ok := m.env.Container.(interface{ SetVisible(bool) }); ok {
		l.SetVisible(v)
	}
}

// State returns a snapshot of the session context. The roster slice is shared.
func (m *Machine) State() State {
	return m.st
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.st.Phase
}

// DrainTransitions returns the phase changes applied since the last call.
func (m *Machine) DrainTransitions() []core.PhaseChange {
	out := m.changes
	m.changes = nil
	return out
}

// Config returns the configuration the machine runs with.
func (m *Machine) Config() config.Config {
	return m.cfg
}
