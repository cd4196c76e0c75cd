// internal/audio/player.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-drone-defense/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Cue: короткий звуковой сигнал игрового события
type Cue int

const (
	CueKill Cue = iota
	CueBaseHit
	CueMissileLaunch
	CueExplosion
	CueWaveStart
	CueGameOver
	CueVictory
)

// cueForEvent: какие события озвучиваются
var cueForEvent = map[event.EventType]Cue{
	event.EnemyKilled:      CueKill,
	event.EnemyReachedBase: CueBaseHit,
	event.MissileLaunched:  CueMissileLaunch,
	event.MissileExploded:  CueExplosion,
	event.WaveStarted:      CueWaveStart,
	event.GameOver:         CueGameOver,
	event.Victory:          CueVictory,
}

// Player проигрывает сигналы через общий микшер beep.
// До Init все вызовы Play молча игнорируются.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init открывает устройство вывода. Игра работает и без звука,
// поэтому ошибку вызывающий обычно только логирует.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close останавливает все звуки
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Subscribe подписывает плеер на озвучиваемые события
func (p *Player) Subscribe(d *event.Dispatcher) {
	types := make([]event.EventType, 0, len(cueForEvent))
	for t := range cueForEvent {
		types = append(types, t)
	}
	d.Subscribe(p, types...)
}

func (p *Player) OnEvent(e event.Event) {
	if cue, ok := cueForEvent[e.Type]; ok {
		p.Play(cue)
	}
}

func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := CueStreamer(cue, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// CueStreamer собирает поток для сигнала
func CueStreamer(cue Cue, volume float64) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	var s beep.Streamer
	switch cue {
	case CueKill:
		s = NewTone(880, 1320, ms(80), WaveSine, sampleRate)
	case CueBaseHit:
		s = NewTone(160, 90, ms(220), WaveSquare, sampleRate)
	case CueMissileLaunch:
		s = beep.Mix(
			NewTone(300, 900, ms(250), WaveSine, sampleRate),
			withVolume(NewTone(0, 0, ms(250), WaveNoise, sampleRate), 0.3),
		)
	case CueExplosion:
		s = NewTone(0, 0, ms(400), WaveNoise, sampleRate)
	case CueWaveStart:
		s = beep.Seq(
			NewTone(440, 440, ms(100), WaveSquare, sampleRate),
			NewTone(660, 660, ms(150), WaveSquare, sampleRate),
		)
	case CueGameOver:
		s = NewTone(440, 110, ms(900), WaveSquare, sampleRate)
	case CueVictory:
		s = beep.Seq(
			NewTone(523, 523, ms(150), WaveSine, sampleRate),
			NewTone(659, 659, ms(150), WaveSine, sampleRate),
			NewTone(784, 784, ms(300), WaveSine, sampleRate),
		)
	default:
		s = beep.Silence(0)
	}
	return withVolume(s, volume)
}
