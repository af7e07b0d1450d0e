// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

// Game is the interface every game variant implements.
// Games contain pure logic with no dependency on Bubble Tea. The platform
// owns the clock, the key state and rendering, and passes timestamps in.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "safezone").
	// Used for CLI commands and the round journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session at timestamp now.
	// The RuntimeConfig provides screen dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig, env Environment, now time.Duration)

	// Step advances the simulation by one tick at timestamp now.
	Step(now time.Duration) core.StepResult

	// Pause and Resume bracket a period during which Step is not called.
	// Both are idempotent.
	Pause(now time.Duration)
	Resume(now time.Duration)

	// Render draws the current game state into the provided screen buffer.
	// Implementations clear the buffer first.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Environment carries the collaborators a game is wired to on Reset.
// Every field is optional.
type Environment struct {
	Config *config.Config         // nil selects the variant's defaults
	Sheet  *config.AnimationSheet // nil selects the built-in sheet
	Input  core.Input
	Sounds core.SoundSink
	Logger *log.Logger
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
