package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
	"github.com/vovakirdan/safezone/internal/games/safezone"
	"github.com/vovakirdan/safezone/internal/registry"
	"github.com/vovakirdan/safezone/internal/storage"
)

// SoundQueue is a sound sink the model drains once per frame.
type SoundQueue interface {
	core.SoundSink
	Flush()
}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Env     registry.Environment // Input and Sounds are filled in by the model
	Store   *storage.Store       // Optional round journal
	Sounds  SoundQueue           // Optional; nil plays nothing
	Clock   core.Clock           // Defaults to a monotonic clock
	Session string               // Journal session name, "local" when empty
	Logger  *log.Logger

	// ScreenshotDir is where ctrl+s writes screen dumps.
	// Empty means ~/.safezone/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	env      registry.Environment
	keys     *core.KeyState
	keymap   KeyMap
	help     help.Model
	clock    core.Clock
	sounds   SoundQueue
	logger   *log.Logger
	session  string
	shotDir  string
	timer    time.Duration
	state    core.GameState
	paused   bool // Paused with the pause key
	blurred  bool // Paused because the terminal lost focus
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	clock := opts.Clock
	if clock == nil {
		clock = core.NewMonotonicClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	session := opts.Session
	if session == "" {
		session = "local"
	}

	// A nil config means the game runs on defaults, so input timing does too.
	gameCfg := config.DefaultConfig()
	if opts.Env.Config != nil {
		gameCfg = *opts.Env.Config
	}
	keys := core.NewKeyState(gameCfg.Input.Hold())

	env := opts.Env
	env.Input = keys
	env.Logger = logger
	if opts.Sounds != nil {
		env.Sounds = opts.Sounds
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:   opts.Store,
		config:  cfg,
		env:     env,
		keys:    keys,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		clock:   clock,
		sounds:  opts.Sounds,
		logger:  logger,
		session: session,
		shotDir: opts.ScreenshotDir,
		timer:   gameCfg.Timing.Timer(),
	}
}

// playHeight leaves the bottom row for the help bar.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config, m.env, m.clock.Now())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.blurred = false
		m.applyPause()
		return m, nil

	case tea.BlurMsg:
		m.blurred = true
		m.applyPause()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.applyPause()
		return m, nil
	}

	if m.paused || m.blurred {
		return m, nil
	}
	if k := m.keymap.GameKey(msg); k != core.KeyNone {
		m.keys.Press(k, m.clock.Now())
	}
	return m, nil
}

// applyPause forwards the combined pause state to the game.
func (m *Model) applyPause() {
	now := m.clock.Now()
	if m.paused || m.blurred {
		m.keys.Reset()
		m.game.Pause(now)
	} else {
		m.game.Resume(now)
	}
	m.state = m.game.State()
}

// handleResize processes window resize events.
// The arena is logical, so the session keeps running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.blurred {
		return m, tickCmd(m.config.TickRate)
	}

	now := m.clock.Now()
	m.keys.Advance(now)

	result := m.game.Step(now)
	m.state = result.State
	m.journal(result.Transitions)

	if m.sounds != nil {
		m.sounds.Flush()
	}

	return m, tickCmd(m.config.TickRate)
}

// journal records finished rounds and logs phase changes.
func (m *Model) journal(changes []core.PhaseChange) {
	for _, c := range changes {
		m.logger.Debug("phase", "game", m.game.ID(), "from", c.From, "to", c.To, "lives", c.Lives)

		var outcome storage.Outcome
		switch c.To {
		case safezone.PhaseWon.String():
			outcome = storage.OutcomeWon
		case safezone.PhaseDead.String():
			outcome = storage.OutcomeDied
		default:
			continue
		}

		survived := m.timer - time.Duration(c.Remaining)*time.Millisecond
		if survived < 0 {
			survived = 0
		}
		m.logger.Info("round over", "game", m.game.ID(), "session", m.session,
			"outcome", outcome, "lives", c.Lives, "survived", survived)

		if m.store == nil {
			continue
		}
		if _, err := m.store.RecordRound(storage.Round{
			GameID:    m.game.ID(),
			Session:   m.session,
			Outcome:   outcome,
			LivesLeft: c.Lives,
			Survived:  survived,
		}); err != nil {
			m.logger.Warn("journal write failed", "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".safezone", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether the session is paused by the player or by focus loss.
func (m Model) Paused() bool {
	return m.paused || m.blurred
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderStatusBar(m.help, m.keymap, m.Paused(), m.screen.Width())
}

// Run starts the Bubble Tea program for a local session.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
