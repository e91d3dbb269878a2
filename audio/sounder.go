package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/escape"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one of the synthesized cues.
type Sound int

const (
	SoundNone Sound = iota
	SoundGameOver
	SoundWin
	SoundRestart
)

func (s Sound) String() string {
	switch s {
	case SoundGameOver:
		return "game-over"
	case SoundWin:
		return "win"
	case SoundRestart:
		return "restart"
	}
	return "none"
}

// soundFor maps a game event to its cue. Per-enemy events stay silent.
func soundFor(t escape.EventType) Sound {
	switch t {
	case escape.EventGameOver:
		return SoundGameOver
	case escape.EventWin:
		return SoundWin
	case escape.EventRestart:
		return SoundRestart
	}
	return SoundNone
}

// streamer builds a fresh streamer for s at the given rate.
func (s Sound) streamer(rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundGameOver:
		// Two falling notes.
		return beep.Seq(
			newTone(rate, 220, 180*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond),
			newTone(rate, 147, 320*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond),
		)
	case SoundWin:
		return beep.Mix(
			withVolume(newTone(rate, 660, 300*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond), 0.6),
			withVolume(newTone(rate, 990, 300*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond), 0.4),
		)
	case SoundRestart:
		return newTone(rate, 880, 60*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond)
	}
	return nil
}

// Sounder plays a cue for terminal transitions and restarts. The zero value
// is not usable; call New.
type Sounder struct {
	// Volume is the linear gain applied to every cue, 0 to 1.
	Volume float64

	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	played  map[Sound]int
}

// New returns a silent Sounder. Call Init to open the speaker.
func New() *Sounder {
	return &Sounder{
		Volume: 0.25,
		mixer:  &beep.Mixer{},
		played: make(map[Sound]int),
	}
}

// Init opens the default audio device. On failure the Sounder stays silent
// and the error is returned for the caller to report.
func (s *Sounder) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[escape] audio disabled: %v\n", err)
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.enabled = true
	return nil
}

// Enabled reports whether Init succeeded.
func (s *Sounder) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// EmitEvent implements escape.EventStore.
func (s *Sounder) EmitEvent(e escape.Event) {
	if snd := soundFor(e.Type); snd != SoundNone {
		s.Play(snd)
	}
}

// Play queues snd on the speaker. Without a speaker it only counts the cue.
func (s *Sounder) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played[snd]++
	if !s.enabled {
		return
	}
	st := withVolume(snd.streamer(sampleRate), s.Volume)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Played returns how many times snd was requested.
func (s *Sounder) Played(snd Sound) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played[snd]
}

// Close silences anything still playing.
func (s *Sounder) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.enabled = false
}
