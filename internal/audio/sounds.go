// Package audio implements the game's sound sink on top of beep.
//
// Sounds are synthesized rather than loaded from files. Named events are
// queued by the simulation during a tick and played when the platform flushes
// the queue once per frame.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/safezone/internal/config"
)

// Output plays finished streamers.
type Output interface {
	Play(s beep.Streamer)
}

// Synth builds a fresh streamer for one playback.
type Synth func(rate beep.SampleRate) beep.Streamer

// DefaultEffects maps every game sound event to its synthesizer.
func DefaultEffects() map[string]Synth {
	return map[string]Synth{
		"hit":             hitSound,
		"ready-state":     readySound,
		"won-state":       wonSound,
		"died-state":      diedSound,
		"game-over-state": gameOverSound,
		"title-screen":    titleSound,
	}
}

// Sounds is a queued sound sink. The zero value is not usable; see New.
type Sounds struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	effects map[string]Synth
	queue   []string
	out     Output
	logger  *log.Logger
}

// New creates a sink for the given effects. It plays nothing until an output
// is attached with Open or SetOutput.
func New(cfg config.AudioConfig, effects map[string]Synth, logger *log.Logger) *Sounds {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	return &Sounds{
		rate:    rate,
		volume:  cfg.MasterVolume,
		effects: effects,
		logger:  logger,
	}
}

// Open attaches the system speaker. When the device cannot be initialized the
// sink stays silent and the error is returned for logging.
func (s *Sounds) Open() error {
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	s.SetOutput(&speakerOutput{mixer: mixer})
	return nil
}

// SetOutput replaces the playback target. nil silences the sink.
func (s *Sounds) SetOutput(out Output) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = out
}

// Loaded reports whether name has a synthesizer.
func (s *Sounds) Loaded(name string) bool {
	_, ok := s.effects[name]
	return ok
}

// Enqueue queues a sound event. Unknown names are dropped.
func (s *Sounds) Enqueue(name string) {
	if !s.Loaded(name) {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, name)
	s.mu.Unlock()
}

// Flush plays every queued event in order and empties the queue.
func (s *Sounds) Flush() {
	s.mu.Lock()
	queue := s.queue
	s.queue = nil
	out := s.out
	s.mu.Unlock()

	if out == nil {
		return
	}
	for _, name := range queue {
		st := s.effects[name](s.rate)
		if st == nil {
			s.logger.Warn("sound synthesis failed", "sound", name)
			continue
		}
		out.Play(newVolume(st, s.volume))
	}
}

// Clear drops queued events without playing them.
func (s *Sounds) Clear() {
	s.mu.Lock()
	s.queue = nil
	s.mu.Unlock()
}

// Pending returns the number of queued events.
func (s *Sounds) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// speakerOutput mixes streamers into the speaker's single stream.
type speakerOutput struct {
	mixer *beep.Mixer
}

func (o *speakerOutput) Play(st beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(st)
	speaker.Unlock()
}
