package audio

import (
	"testing"

	"github.com/phanxgames/escape"
)

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event escape.EventType
		want  Sound
	}{
		{escape.EventSpawn, SoundNone},
		{escape.EventPrune, SoundNone},
		{escape.EventCollision, SoundNone},
		{escape.EventGameOver, SoundGameOver},
		{escape.EventWin, SoundWin},
		{escape.EventRestart, SoundRestart},
	}
	for _, tt := range tests {
		if got := soundFor(tt.event); got != tt.want {
			t.Errorf("soundFor(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestSoundStreamersEnd(t *testing.T) {
	for _, snd := range []Sound{SoundGameOver, SoundWin, SoundRestart} {
		st := snd.streamer(sampleRate)
		if st == nil {
			t.Fatalf("%v: nil streamer", snd)
		}
		n, _ := drain(st)
		if n <= 0 {
			t.Errorf("%v: streamed %d samples", snd, n)
		}
		if n > sampleRate.N(1e9) {
			t.Errorf("%v: %d samples is longer than a second", snd, n)
		}
	}
	if SoundNone.streamer(sampleRate) != nil {
		t.Error("SoundNone should have no streamer")
	}
}

func TestSounderWithoutSpeaker(t *testing.T) {
	s := New()
	if s.Enabled() {
		t.Fatal("new Sounder should be disabled")
	}
	var store escape.EventStore = s
	store.EmitEvent(escape.Event{Type: escape.EventSpawn})
	store.EmitEvent(escape.Event{Type: escape.EventGameOver})
	store.EmitEvent(escape.Event{Type: escape.EventRestart})
	store.EmitEvent(escape.Event{Type: escape.EventRestart})

	if got := s.Played(SoundGameOver); got != 1 {
		t.Errorf("Played(game-over) = %d, want 1", got)
	}
	if got := s.Played(SoundRestart); got != 2 {
		t.Errorf("Played(restart) = %d, want 2", got)
	}
	if got := s.Played(SoundNone); got != 0 {
		t.Errorf("Played(none) = %d, want 0", got)
	}
	s.Close()
}
