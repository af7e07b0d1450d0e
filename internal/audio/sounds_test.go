package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/safezone/internal/config"
)

// recorder is an Output that counts and drains played streamers.
type recorder struct {
	played  int
	samples int
}

func (r *recorder) Play(s beep.Streamer) {
	r.played++
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		r.samples += n
		if !ok {
			return
		}
	}
}

func testConfig() config.AudioConfig {
	return config.AudioConfig{Enabled: true, MasterVolume: 0.5, SampleRate: 8000}
}

func TestEnqueueDropsUnknown(t *testing.T) {
	s := New(testConfig(), DefaultEffects(), nil)
	s.Enqueue("hit")
	s.Enqueue("nope")
	s.Enqueue("won-state")

	if got := s.Pending(); got != 2 {
		t.Errorf("Pending = %d, want 2", got)
	}
}

func TestFlushPlaysInOrder(t *testing.T) {
	var order []string
	effects := map[string]Synth{}
	for _, name := range []string{"a", "b"} {
		name := name
		effects[name] = func(rate beep.SampleRate) beep.Streamer {
			order = append(order, name)
			return newOscillator(440, 10*time.Millisecond, waveSine, rate)
		}
	}

	s := New(testConfig(), effects, nil)
	rec := &recorder{}
	s.SetOutput(rec)

	s.Enqueue("b")
	s.Enqueue("a")
	s.Enqueue("b")
	s.Flush()

	if rec.played != 3 {
		t.Fatalf("played = %d, want 3", rec.played)
	}
	if len(order) != 3 || order[0] != "b" || order[1] != "a" || order[2] != "b" {
		t.Errorf("order = %v, want [b a b]", order)
	}
	if s.Pending() != 0 {
		t.Error("queue not drained")
	}
	if want := 3 * 80; rec.samples != want {
		t.Errorf("samples = %d, want %d", rec.samples, want)
	}
}

func TestFlushWithoutOutputDrains(t *testing.T) {
	s := New(testConfig(), DefaultEffects(), nil)
	s.Enqueue("hit")
	s.Flush()
	if s.Pending() != 0 {
		t.Error("queue not drained by silent flush")
	}
}

func TestClear(t *testing.T) {
	s := New(testConfig(), DefaultEffects(), nil)
	rec := &recorder{}
	s.SetOutput(rec)

	s.Enqueue("hit")
	s.Enqueue("title-screen")
	s.Clear()
	s.Flush()

	if rec.played != 0 {
		t.Errorf("played = %d after Clear, want 0", rec.played)
	}
}

func TestSkipsFailedSynthesis(t *testing.T) {
	effects := map[string]Synth{
		"broken": func(beep.SampleRate) beep.Streamer { return nil },
	}
	s := New(testConfig(), effects, nil)
	rec := &recorder{}
	s.SetOutput(rec)

	s.Enqueue("broken")
	s.Flush()
	if rec.played != 0 {
		t.Errorf("played = %d, want 0", rec.played)
	}
}

func TestDefaultEffectsAreFinite(t *testing.T) {
	rate := beep.SampleRate(8000)
	for name, synth := range DefaultEffects() {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			rec.Play(synth(rate))
			if rec.samples == 0 {
				t.Error("no samples")
			}
			if rec.samples > rate.N(3*time.Second) {
				t.Errorf("%d samples, longer than 3s", rec.samples)
			}
		})
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []waveType{waveSine, waveSquare, waveSaw, waveNoise} {
		osc := newOscillator(440, 50*time.Millisecond, wave, rate)
		buf := make([][2]float64, 400)
		n, _ := osc.Stream(buf)
		if n != 400 {
			t.Fatalf("wave %d: streamed %d samples, want 400", wave, n)
		}
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -1 || v > 1 {
				t.Fatalf("wave %d: sample %d = %f out of range", wave, i, v)
			}
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(0, 100*time.Millisecond, waveSquare, rate)
	env := newEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack start)", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[50][0])
	}
	if buf[99][0] <= 0 || buf[99][0] >= 0.2 {
		t.Errorf("last sample = %f, want small positive (release)", buf[99][0])
	}
}
