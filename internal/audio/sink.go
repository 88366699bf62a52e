package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays sound events emitted by the simulation.
type Sink interface {
	Play(events []core.Event)
	Close()
}

// NopSink discards every event.
type NopSink struct{}

// Play drops the events.
func (NopSink) Play([]core.Event) {}

// Close does nothing.
func (NopSink) Close() {}

// SpeakerSink mixes blips onto the system audio device.
type SpeakerSink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeakerSink opens the audio device. Callers should fall back to
// NopSink when this fails, e.g. on machines without a sound card.
func NewSpeakerSink(volume float64) (*SpeakerSink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}

	s := &SpeakerSink{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues one blip per sound event.
func (s *SpeakerSink) Play(events []core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	var blips []beep.Streamer
	for _, e := range events {
		if e.Type == core.EventSound {
			blips = append(blips, NewBlip(Frequency(e.Detail), s.volume, sampleRate))
		}
	}
	if len(blips) == 0 {
		return
	}

	speaker.Lock()
	s.mixer.Add(blips...)
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
