// Package audio synthesizes and plays all game sound. Effects and
// music are generated procedurally at startup, so the binary ships no
// sound assets.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/duskhall/duskhall/internal/game"
)

const sampleRate = beep.SampleRate(sampleRateHz)

// bufStreamer streams a pre-rendered mono buffer to both channels.
type bufStreamer struct {
	buf mono
	pos int
}

func (b *bufStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufStreamer) Err() error { return nil }

func (b *bufStreamer) Len() int      { return len(b.buf) }
func (b *bufStreamer) Position() int { return b.pos }

func (b *bufStreamer) Seek(p int) error {
	if p < 0 || p > len(b.buf) {
		return fmt.Errorf("audio: seek out of range: %d", p)
	}
	b.pos = p
	return nil
}

// Engine implements game.AudioSink on top of the beep speaker. Effects
// and music feed separate mixers so their volumes adjust
// independently.
type Engine struct {
	mu          sync.Mutex
	initialized bool

	fxMixer    *beep.Mixer
	musicMixer *beep.Mixer
	fxVol      *effects.Volume
	musicVol   *effects.Volume

	musicCtrl *beep.Ctrl
	curTrack  int

	sounds map[game.Sound]mono
}

// NewEngine renders all sound buffers but does not open the device.
func NewEngine() *Engine {
	return &Engine{
		fxMixer:    &beep.Mixer{},
		musicMixer: &beep.Mixer{},
		curTrack:   game.MusicOff,
		sounds: map[game.Sound]mono{
			game.SoundSwing:      renderSwing(),
			game.SoundHit:        renderHit(),
			game.SoundMiss:       renderMiss(),
			game.SoundFootstep:   renderFootstep(),
			game.SoundEnemyDeath: renderEnemyDeath(),
			game.SoundPlayerHurt: renderPlayerHurt(),
			game.SoundVictory:    renderVictory(),
		},
	}
}

// Init opens the speaker and starts the mix graph. Safe to call once;
// on failure the engine stays silent and usable.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	e.fxVol = &effects.Volume{Streamer: e.fxMixer, Base: 2}
	e.musicVol = &effects.Volume{Streamer: e.musicMixer, Base: 2}
	root := &beep.Mixer{}
	root.Add(e.fxVol, e.musicVol)
	speaker.Play(root)
	e.initialized = true
	return nil
}

// Close silences everything. The beep speaker has no close, so this
// just clears the mixers.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.fxMixer.Clear()
	e.musicMixer.Clear()
	speaker.Unlock()
}

// PlayOneShot queues an effect. Unknown sounds are ignored.
func (e *Engine) PlayOneShot(s game.Sound) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	buf, ok := e.sounds[s]
	if !ok {
		return
	}
	speaker.Lock()
	e.fxMixer.Add(&bufStreamer{buf: buf})
	speaker.Unlock()
}

// SetMusicTrack swaps the looping background track. game.MusicOff (or
// any negative value) stops music entirely. Re-setting the current
// track is a no-op, so the loop is not restarted on menu round-trips.
func (e *Engine) SetMusicTrack(track int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized || track == e.curTrack {
		return
	}
	speaker.Lock()
	if e.musicCtrl != nil {
		e.musicCtrl.Paused = true
		e.musicMixer.Clear()
		e.musicCtrl = nil
	}
	if track >= 0 {
		stream := &bufStreamer{buf: renderTrack(track)}
		e.musicCtrl = &beep.Ctrl{Streamer: beep.Loop(-1, stream)}
		e.musicMixer.Add(e.musicCtrl)
	}
	speaker.Unlock()
	e.curTrack = track
}

// SetVolume adjusts a channel. level is linear in [0,1]; 0 mutes.
func (e *Engine) SetVolume(ch game.AudioChannel, level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	vol := e.fxVol
	if ch == game.ChannelMusic {
		vol = e.musicVol
	}
	speaker.Lock()
	if level <= 0 {
		vol.Silent = true
	} else {
		vol.Silent = false
		vol.Volume = math.Log2(math.Min(level, 1))
	}
	speaker.Unlock()
}

var _ game.AudioSink = (*Engine)(nil)
