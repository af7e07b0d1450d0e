package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveType is the shape an oscillator produces.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newOscillator returns a streamer that plays one wave for duration.
// Noise is seeded from the frequency and duration, so it repeats exactly.
func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// newEnvelope shapes s with linear attack and release ramps over duration.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a melody.
type note struct {
	freq float64
	dur  time.Duration
	wave waveType
}

// melody plays notes back to back, each with a short attack and release.
func melody(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := newOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, newEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return beep.Seq(parts...)
}

// Synthesizers for every game sound event follow.

func hitSound(rate beep.SampleRate) beep.Streamer {
	const d = 90 * time.Millisecond
	thud := newEnvelope(newOscillator(140, d, waveSquare, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate)
	crack := newEnvelope(newOscillator(0, d, waveNoise, rate), d, time.Millisecond, 80*time.Millisecond, rate)
	return beep.Mix(newVolume(thud, 0.6), newVolume(crack, 0.4))
}

func readySound(rate beep.SampleRate) beep.Streamer {
	return melody(rate,
		note{523.25, 120 * time.Millisecond, waveSquare}, // C5
		note{783.99, 180 * time.Millisecond, waveSquare}, // G5
	)
}

func wonSound(rate beep.SampleRate) beep.Streamer {
	return melody(rate,
		note{523.25, 110 * time.Millisecond, waveSquare}, // C5
		note{659.25, 110 * time.Millisecond, waveSquare}, // E5
		note{783.99, 110 * time.Millisecond, waveSquare}, // G5
		note{1046.5, 320 * time.Millisecond, waveSquare}, // C6
	)
}

func diedSound(rate beep.SampleRate) beep.Streamer {
	return melody(rate,
		note{392.00, 120 * time.Millisecond, waveSaw}, // G4
		note{311.13, 120 * time.Millisecond, waveSaw}, // Eb4
		note{196.00, 260 * time.Millisecond, waveSaw}, // G3
	)
}

func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return melody(rate,
		note{293.66, 240 * time.Millisecond, waveSaw}, // D4
		note{277.18, 240 * time.Millisecond, waveSaw}, // C#4
		note{261.63, 240 * time.Millisecond, waveSaw}, // C4
		note{130.81, 600 * time.Millisecond, waveSaw}, // C3
	)
}

func titleSound(rate beep.SampleRate) beep.Streamer {
	const d = 700 * time.Millisecond
	fund := newEnvelope(newOscillator(880, d, waveSine, rate), d, 5*time.Millisecond, 600*time.Millisecond, rate)
	over := newEnvelope(newOscillator(1760, d, waveSine, rate), d, 5*time.Millisecond, 300*time.Millisecond, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}
