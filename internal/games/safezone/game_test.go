package safezone

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
	"github.com/vovakirdan/safezone/internal/registry"
)

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{ID, ClassicID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestClassicVariantOverridesSession(t *testing.T) {
	cfg := config.DefaultConfig()

	g := New(VariantClassic)
	g.Reset(core.DefaultConfig(), registry.Environment{Config: &cfg}, 0)

	session := g.Machine().Config().Session
	if session.ResetTo != config.ResetToRunning || session.WonConfirm {
		t.Errorf("classic session = %+v", session)
	}
	if cfg.Session.ResetTo != config.ResetToReady {
		t.Error("Reset modified the caller's config")
	}
}

func TestGameStepAndState(t *testing.T) {
	keys := core.NewKeyState(0)
	g := New(VariantStandard)
	g.Reset(core.DefaultConfig(), registry.Environment{Input: keys}, 0)

	if got := g.State(); got.Phase != "TITLE_SCREEN" || got.Lives != 3 || got.Remaining != 30000 {
		t.Fatalf("initial state = %+v", got)
	}

	keys.Press(core.KeyConfirm, 0)
	res := g.Step(16 * ms)
	if res.State.Phase != "READY" {
		t.Fatalf("phase = %q, want READY", res.State.Phase)
	}
	if len(res.Transitions) != 1 || res.Transitions[0].To != "READY" || res.Transitions[0].At != 16 {
		t.Errorf("transitions = %+v", res.Transitions)
	}

	g.Pause(time.Second)
	if !g.State().Paused {
		t.Error("State().Paused = false after Pause")
	}
	g.Resume(2 * time.Second)
	if g.State().Paused {
		t.Error("State().Paused = true after Resume")
	}
}

func TestGameWithoutReset(t *testing.T) {
	g := New(VariantStandard)
	if res := g.Step(0); res.State.Phase != "" {
		t.Errorf("Step before Reset = %+v", res)
	}
	g.Pause(0)
	g.Resume(0)
	g.Render(core.NewScreen(10, 5))
}

func TestRender(t *testing.T) {
	keys := core.NewKeyState(0)
	g := New(VariantStandard)
	rc := core.DefaultConfig()
	g.Reset(rc, registry.Environment{Input: keys}, 0)

	scr := core.NewScreen(rc.ScreenW, rc.ScreenH)

	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "S A F E   Z O N E") || !strings.Contains(out, "Press ENTER") {
		t.Errorf("title screen missing:\n%s", out)
	}

	keys.Press(core.KeyConfirm, 0)
	g.Step(0)
	g.Render(scr)

	if hud := scr.Row(0); !strings.Contains(hud, "Time to last: 00:30:000") || !strings.Contains(hud, "Lives: 3") {
		t.Errorf("HUD = %q", hud)
	}
	out := scr.String()
	if !strings.Contains(out, "Last for 30 seconds") {
		t.Errorf("ready banner missing:\n%s", out)
	}

	g.Step(1600 * ms)
	g.Render(scr)
	out = scr.String()
	if !strings.ContainsRune(out, IslandChar) {
		t.Error("safe zone not drawn")
	}
	if !strings.ContainsRune(out, PlayerGlyph) {
		t.Errorf("player not drawn:\n%s", out)
	}

	g.Pause(1700 * ms)
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause banner missing")
	}
}

func TestRenderHitboxes(t *testing.T) {
	keys := core.NewKeyState(0)
	g := New(VariantStandard)
	rc := core.DefaultConfig()
	rc.ShowHitboxes = true
	g.Reset(rc, registry.Environment{Input: keys}, 0)

	keys.Press(core.KeyConfirm, 0)
	g.Step(0)
	g.Step(1600 * ms)

	scr := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(scr)
	if !strings.ContainsRune(scr.String(), HitboxChar) {
		t.Error("hitbox overlay missing")
	}
}
