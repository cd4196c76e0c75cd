// internal/audio/tone.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave: форма сигнала генератора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone: генератор с линейным скольжением частоты от from к to
type tone struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone создаёт тон длительностью d; частота плавно идёт от from к to
func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{from: from, to: to, total: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}

		// Короткое затухание к концу, чтобы не было щелчка
		v *= 1 - progress
		samples[i][0], samples[i][1] = v, v

		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume: громкость в линейной шкале; 0 и меньше даёт тишину
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
