// Package audio turns collision sound requests into short synthesized blips.
package audio

import (
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Blip timing
const (
	blipDuration = 60 * time.Millisecond
	blipAttack   = 5 * time.Millisecond
	blipRelease  = 40 * time.Millisecond
)

// oscillator generates a square wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, total: rate.N(d), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}

		// Linear attack and release to avoid clicks
		gain := 1.0
		att := o.rate.N(blipAttack)
		rel := o.rate.N(blipRelease)
		if o.position < att {
			gain = float64(o.position) / float64(att)
		}
		if left := o.total - o.position; left < rel {
			gain = float64(left) / float64(rel)
		}

		samples[i][0] = val * gain
		samples[i][1] = val * gain

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Frequency picks the blip pitch for a collision detail such as "brick:top".
func Frequency(detail string) float64 {
	kind, _, _ := strings.Cut(detail, ":")
	switch kind {
	case "brick":
		return 880
	case "paddle":
		return 440
	default:
		return 220
	}
}

// NewBlip returns a short enveloped square wave at the given volume (0..1).
func NewBlip(freq, volume float64, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, blipDuration, rate)
	if volume <= 0 {
		return &effects.Volume{Streamer: osc, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: osc, Base: 2, Volume: math.Log2(volume)}
}
