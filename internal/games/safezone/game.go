package safezone

import (
	"time"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
	"github.com/vovakirdan/safezone/internal/registry"
)

// Registered game IDs.
const (
	ID        = "safezone"
	ClassicID = "safezone-classic"
)

func init() {
	registry.Register(ID, func() registry.Game { return New(VariantStandard) })
	registry.Register(ClassicID, func() registry.Game { return New(VariantClassic) })
}

// Variant selects the post-round flow.
type Variant int

const (
	// VariantStandard runs the session settings of the loaded config. The
	// defaults go from RESET to READY and wait for confirm after a win.
	VariantStandard Variant = iota
	// VariantClassic goes from RESET straight to RUNNING and restarts after a win on its own.
	VariantClassic
)

// apply forces the session flow of the variant onto cfg.
func (v Variant) apply(cfg *config.Config) {
	if v == VariantClassic {
		cfg.Session.ResetTo = config.ResetToRunning
		cfg.Session.WonConfirm = false
	}
}

// Game adapts a Machine to the platform's registry.Game contract.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	machine *Machine
	layer   *Layer
}

// New creates a game of the given variant. Reset must be called before Step.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return ClassicID
	}
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Safe Zone (classic)"
	}
	return "Safe Zone"
}

// Reset starts a new session on the title screen.
func (g *Game) Reset(rc core.RuntimeConfig, env registry.Environment, now time.Duration) {
	g.runtime = rc

	cfg := config.DefaultConfig()
	if env.Config != nil {
		cfg = *env.Config
	}
	g.variant.apply(&cfg)

	sheet := config.DefaultAnimationSheet()
	if env.Sheet != nil {
		sheet = *env.Sheet
	}

	g.layer = NewLayer()
	g.machine = NewMachine(Options{
		Config:    cfg,
		Sheet:     sheet,
		Seed:      rc.Seed,
		Input:     env.Input,
		Sounds:    env.Sounds,
		Container: g.layer,
		Logger:    env.Logger,
	}, now)
}

// Step advances the session by one tick.
func (g *Game) Step(now time.Duration) core.StepResult {
	if g.machine == nil {
		return core.StepResult{}
	}
	g.machine.Tick(now)
	return core.StepResult{
		State:       g.State(),
		Transitions: g.machine.DrainTransitions(),
	}
}

// Pause freezes the session.
func (g *Game) Pause(now time.Duration) {
	if g.machine != nil {
		g.machine.Pause(now)
	}
}

// Resume continues a paused session.
func (g *Game) Resume(now time.Duration) {
	if g.machine != nil {
		g.machine.Resume(now)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	st := g.machine.State()
	return core.GameState{
		Phase:     st.Phase.String(),
		Lives:     st.Lives,
		Remaining: st.Display.Milliseconds(),
		Paused:    st.Paused,
	}
}

// Machine exposes the underlying phase machine.
func (g *Game) Machine() *Machine {
	return g.machine
}
