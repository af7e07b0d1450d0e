package safezone

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

func TestMachineStartsOnTitle(t *testing.T) {
	r := newRig(t, quietConfig())

	st := r.m.State()
	if st.Phase != PhaseTitleScreen {
		t.Fatalf("phase = %v, want TITLE_SCREEN", st.Phase)
	}
	if st.ArenaVisible || r.layer.Visible() {
		t.Error("arena visible on title screen")
	}
	if r.layer.Len() != 1 || !r.layer.Contains(st.Player) {
		t.Error("player not attached to the container")
	}
	if r.sounds.count(SoundTitleScreen) != 1 {
		t.Errorf("title sounds = %d, want 1", r.sounds.count(SoundTitleScreen))
	}

	// Without confirm the title screen waits forever.
	r.m.Tick(time.Hour)
	if r.m.Phase() != PhaseTitleScreen {
		t.Errorf("phase = %v without confirm, want TITLE_SCREEN", r.m.Phase())
	}
}

func TestMachineTitleToRunning(t *testing.T) {
	r := newRig(t, quietConfig())

	r.keys.Press(core.KeyConfirm, 0)
	r.m.Tick(100 * ms)

	st := r.m.State()
	if st.Phase != PhaseReady || st.Banner != BannerReady {
		t.Fatalf("phase/banner = %v/%v, want READY/ready", st.Phase, st.Banner)
	}
	if !st.ArenaVisible || !r.layer.Visible() {
		t.Error("arena hidden in READY")
	}
	if r.keys.IsKeyPressed(core.KeyConfirm) {
		t.Error("confirm key not consumed")
	}
	if r.sounds.count(SoundReadyState) != 1 {
		t.Errorf("ready sounds = %d, want 1", r.sounds.count(SoundReadyState))
	}

	r.m.Tick(1699 * ms)
	if r.m.Phase() != PhaseReady {
		t.Fatalf("left READY after %v", 1599*ms)
	}

	r.m.Tick(1700 * ms)
	st = r.m.State()
	if st.Phase != PhaseRunning || st.Banner != BannerNone {
		t.Fatalf("phase/banner = %v/%v, want RUNNING/none", st.Phase, st.Banner)
	}
	if st.TimerStart != 1700*ms || st.Remaining != 30*time.Second {
		t.Errorf("timer = start %v remaining %v, want 1.7s / 30s", st.TimerStart, st.Remaining)
	}
}

func TestMachineSurviveCountdown(t *testing.T) {
	r := newRig(t, quietConfig())
	start := r.toRunning(t)
	r.m.DrainTransitions()

	var now time.Duration
	for now = start + 16*ms; r.m.Phase() == PhaseRunning; now += 16 * ms {
		if now-start > 31*time.Second {
			t.Fatal("countdown never finished")
		}
		r.m.Tick(now)
	}
	last := now - 16*ms

	st := r.m.State()
	if st.Phase != PhaseWon {
		t.Fatalf("phase = %v, want WON", st.Phase)
	}
	if last-start < 30*time.Second || last-start >= 30*time.Second+16*ms {
		t.Errorf("WON at %v into the round, want the first tick at or past 30s", last-start)
	}
	if st.Lives != 3 {
		t.Errorf("lives = %d, want 3", st.Lives)
	}
	if st.Display != 0 {
		t.Errorf("Display = %v, want 0", st.Display)
	}
	if st.Banner != BannerWon || r.sounds.count(SoundWonState) != 1 {
		t.Error("win banner or sound missing")
	}

	changes := r.m.DrainTransitions()
	if len(changes) != 1 || changes[0].From != "RUNNING" || changes[0].To != "WON" {
		t.Errorf("transitions = %+v, want one RUNNING->WON", changes)
	}

	// WON waits for confirm, then returns to the title with a fresh session.
	r.m.Tick(last + time.Minute)
	if r.m.Phase() != PhaseWon {
		t.Fatalf("left WON without confirm")
	}
	r.keys.Press(core.KeyConfirm, 0)
	r.m.Tick(last + time.Minute + ms)

	st = r.m.State()
	if st.Phase != PhaseTitleScreen || st.ArenaVisible || st.Banner != BannerNone {
		t.Errorf("after confirm: phase %v arena %v banner %v", st.Phase, st.ArenaVisible, st.Banner)
	}
	if st.Lives != 3 || st.Display != 30*time.Second {
		t.Errorf("session not reset: lives %d display %v", st.Lives, st.Display)
	}
	if r.sounds.count(SoundTitleScreen) != 2 {
		t.Errorf("title sounds = %d, want 2", r.sounds.count(SoundTitleScreen))
	}
}

func TestMachineDeathCostsOneLife(t *testing.T) {
	r := newRig(t, quietConfig())
	start := r.toRunning(t)

	before := len(r.m.State().Entities)
	r.pushOut()
	r.m.Tick(start + 10*ms)

	st := r.m.State()
	if st.Phase != PhaseDead {
		t.Fatalf("phase = %v, want DEAD", st.Phase)
	}
	if st.Lives != 2 {
		t.Errorf("lives = %d, want 2", st.Lives)
	}
	if len(st.Entities) != before || st.Entities[0] != Agent(st.Player) {
		t.Errorf("roster changed: %d entities, want %d with the player first", len(st.Entities), before)
	}
	if st.Banner != BannerDead || r.sounds.count(SoundDiedState) != 1 {
		t.Error("death banner or sound missing")
	}

	dead := start + 10*ms
	r.m.Tick(dead + 799*ms)
	if r.m.Phase() != PhaseDead {
		t.Fatalf("left DEAD early")
	}

	// RESET resolves to READY on the same tick.
	r.m.DrainTransitions()
	r.m.Tick(dead + 800*ms)
	st = r.m.State()
	if st.Phase != PhaseReady || st.Banner != BannerReady {
		t.Fatalf("phase/banner = %v/%v, want READY/ready", st.Phase, st.Banner)
	}
	if x, y := st.Player.Position(); x != 400 || y != 300 {
		t.Errorf("player at (%v, %v), want (400, 300)", x, y)
	}
	if st.Display != 30*time.Second || st.TimerStart != dead+800*ms {
		t.Errorf("countdown not reset: display %v start %v", st.Display, st.TimerStart)
	}

	want := []string{"DEAD>RESET", "RESET>READY"}
	var got []string
	for _, c := range r.m.DrainTransitions() {
		got = append(got, c.From+">"+c.To)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("transitions = %v, want %v", got, want)
	}
}

func TestMachineLastLifeEndsGame(t *testing.T) {
	r := newRig(t, quietConfig())
	start := r.toRunning(t)

	r.m.st.Lives = 1
	r.pushOut()
	r.m.Tick(start + 10*ms)
	if st := r.m.State(); st.Phase != PhaseDead || st.Lives != 0 {
		t.Fatalf("phase %v lives %d, want DEAD with 0 lives", st.Phase, st.Lives)
	}

	dead := start + 10*ms
	r.m.Tick(dead + 800*ms)
	st := r.m.State()
	if st.Phase != PhaseGameOver || st.Banner != BannerGameOver {
		t.Fatalf("phase/banner = %v/%v, want GAME_OVER", st.Phase, st.Banner)
	}
	if r.sounds.count(SoundGameOver) != 1 {
		t.Error("game over sound missing")
	}

	over := dead + 800*ms
	r.m.Tick(over + 1599*ms)
	if r.m.Phase() != PhaseGameOver {
		t.Fatal("left GAME_OVER early")
	}
	r.m.Tick(over + 1600*ms)
	st = r.m.State()
	if st.Phase != PhaseTitleScreen || st.Lives != 3 || st.Banner != BannerNone {
		t.Errorf("after game over: phase %v lives %d banner %v", st.Phase, st.Lives, st.Banner)
	}
}

func TestMachineResetClearsEnemies(t *testing.T) {
	r := newRig(t, config.DefaultConfig())
	start := r.toRunning(t)

	now := start
	for i := 0; i < 30; i++ {
		now += 16 * ms
		r.m.Tick(now)
	}
	if r.m.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want RUNNING", r.m.Phase())
	}
	if st := r.m.State(); st.Enemies() == 0 {
		t.Fatal("no enemies spawned")
	}

	r.pushOut()
	now += 16 * ms
	r.m.Tick(now)
	if r.m.Phase() != PhaseDead {
		t.Fatalf("phase = %v, want DEAD", r.m.Phase())
	}

	r.m.Tick(now + 800*ms)
	st := r.m.State()
	if st.Enemies() != 0 || len(st.Entities) != 1 {
		t.Errorf("roster after reset: %d entities, %d enemies", len(st.Entities), st.Enemies())
	}
	if r.layer.Len() != 1 {
		t.Errorf("container holds %d agents after reset, want 1", r.layer.Len())
	}
}

func TestMachineClassicFlow(t *testing.T) {
	cfg := quietConfig()
	cfg.Session.ResetTo = config.ResetToRunning
	cfg.Session.WonConfirm = false

	r := newRig(t, cfg)
	start := r.toRunning(t)

	// Death resets straight into RUNNING.
	r.pushOut()
	r.m.Tick(start + 10*ms)
	r.m.Tick(start + 810*ms)
	if st := r.m.State(); st.Phase != PhaseRunning || st.Lives != 2 {
		t.Fatalf("after death: phase %v lives %d, want RUNNING with 2", st.Phase, st.Lives)
	}

	// A win restarts the round on its own after the dead duration.
	roundStart := start + 810*ms
	r.m.Tick(roundStart + 30*time.Second)
	if r.m.Phase() != PhaseWon {
		t.Fatalf("phase = %v, want WON", r.m.Phase())
	}
	won := roundStart + 30*time.Second
	r.m.Tick(won + 800*ms)
	if st := r.m.State(); st.Phase != PhaseRunning || st.Lives != 2 {
		t.Errorf("after win: phase %v lives %d, want RUNNING with 2", st.Phase, st.Lives)
	}
}

func TestPauseShiftsAnchors(t *testing.T) {
	r := newRig(t, config.DefaultConfig())
	start := r.toRunning(t)

	r.m.Tick(start + 500*ms)
	before := r.m.State()

	pauseAt := start + 500*ms
	r.m.Pause(pauseAt)
	r.m.Pause(pauseAt + time.Second) // ignored

	// Ticks are ignored while paused.
	r.m.Tick(pauseAt + 2*time.Second)
	if got := r.m.State(); got.Display != before.Display || len(got.Entities) != len(before.Entities) {
		t.Fatal("state advanced while paused")
	}

	const d = 4 * time.Second
	r.m.Resume(pauseAt + d)
	r.m.Resume(pauseAt + 2*d) // ignored

	after := r.m.State()
	anchors := []struct {
		name          string
		before, after time.Duration
	}{
		{"timer", before.TimerStart, after.TimerStart},
		{"phase", before.PhaseStart, after.PhaseStart},
		{"spawn", before.LastSpawn, after.LastSpawn},
	}
	for _, a := range anchors {
		if a.after-a.before != d {
			t.Errorf("%s anchor shifted by %v, want %v", a.name, a.after-a.before, d)
		}
		if (pauseAt+d)-a.after != pauseAt-a.before {
			t.Errorf("%s elapsed changed across the pause", a.name)
		}
	}
	if after.Paused {
		t.Error("still paused after resume")
	}
}

func TestPauseFreezesReadyPhase(t *testing.T) {
	r := newRig(t, quietConfig())
	r.keys.Press(core.KeyConfirm, 0)
	r.m.Tick(0)

	r.m.Pause(500 * ms)
	r.m.Resume(10500 * ms)

	r.m.Tick(11599 * ms)
	if r.m.Phase() != PhaseReady {
		t.Fatalf("left READY after 1599ms of unpaused time")
	}
	r.m.Tick(11600 * ms)
	if r.m.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want RUNNING", r.m.Phase())
	}
}

func TestMachineWithoutCollaborators(t *testing.T) {
	m := NewMachine(Options{Config: quietConfig()}, 0)
	for now := time.Duration(0); now < 5*time.Second; now += 16 * ms {
		m.Tick(now)
	}
	if m.Phase() != PhaseTitleScreen {
		t.Errorf("phase = %v, want TITLE_SCREEN without input", m.Phase())
	}
}

// snapshot captures what a determinism run compares.
type snapshot struct {
	Phase   Phase
	Lives   int
	Display time.Duration
	Agents  [][2]float64
}

func runScripted(t *testing.T, ticks int) []snapshot {
	t.Helper()
	r := newRig(t, config.DefaultConfig())

	script := []core.Key{core.KeyLeft, core.KeyUp, core.KeyRight, core.KeyDown}
	out := make([]snapshot, 0, ticks)

	for i := 0; i < ticks; i++ {
		now := time.Duration(i) * 16 * ms

		r.keys.Reset()
		r.keys.Press(script[(i/40)%len(script)], now)
		switch r.m.Phase() {
		case PhaseTitleScreen, PhaseWon:
			r.keys.Press(core.KeyConfirm, now)
		}

		r.m.Tick(now)

		st := r.m.State()
		snap := snapshot{Phase: st.Phase, Lives: st.Lives, Display: st.Display}
		for _, a := range st.Entities {
			x, y := a.Position()
			snap.Agents = append(snap.Agents, [2]float64{x, y})
		}
		out = append(out, snap)
	}
	return out
}

func TestDeterminism(t *testing.T) {
	a := runScripted(t, 3000)
	b := runScripted(t, 3000)

	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("tick %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}
