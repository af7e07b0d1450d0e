package safezone

import (
	"testing"
	"time"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

const ms = time.Millisecond

// soundLog records enqueued sound events.
type soundLog struct {
	names []string
}

func (s *soundLog) Enqueue(name string) {
	s.names = append(s.names, name)
}

func (s *soundLog) count(name string) int {
	n := 0
	for _, got := range s.names {
		if got == name {
			n++
		}
	}
	return n
}

// quietConfig returns the default config with spawning effectively disabled.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timing.SpawnIntervalMs = 1 << 30
	return cfg
}

type rig struct {
	m      *Machine
	keys   *core.KeyState
	sounds *soundLog
	layer  *Layer
}

func newRig(t *testing.T, cfg config.Config) *rig {
	t.Helper()
	r := &rig{
		keys:   core.NewKeyState(0),
		sounds: &soundLog{},
		layer:  NewLayer(),
	}
	r.m = NewMachine(Options{
		Config:    cfg,
		Sheet:     config.DefaultAnimationSheet(),
		Seed:      42,
		Input:     r.keys,
		Sounds:    r.sounds,
		Container: r.layer,
	}, 0)
	return r
}

// toRunning presses confirm at 0 and ticks through READY.
// It returns the timestamp at which RUNNING began.
func (r *rig) toRunning(t *testing.T) time.Duration {
	t.Helper()
	r.keys.Press(core.KeyConfirm, 0)
	r.m.Tick(0)
	if got := r.m.Phase(); got != PhaseReady {
		t.Fatalf("after confirm: phase = %v, want READY", got)
	}
	start := r.m.Config().Timing.Ready()
	r.m.Tick(start)
	if got := r.m.Phase(); got != PhaseRunning {
		t.Fatalf("after ready duration: phase = %v, want RUNNING", got)
	}
	return start
}

// pushOut moves the player far outside the safe circle.
func (r *rig) pushOut() {
	r.m.st.Player.x = 40
	r.m.st.Player.y = 40
}
