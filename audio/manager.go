package audio

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/ukg-math-adventure/common"
)

var (
	// ErrUnavailable is returned when the page has no Web Audio support or
	// the context could not be created.
	ErrUnavailable = errors.New("audio: web audio unavailable")
	// ErrClosed is returned by Init after Close.
	ErrClosed = errors.New("audio: manager closed")
)

// AudioManager owns the page's single AudioContext and everything that plays
// on it: the effect synthesizer, the music sequencer and speech buffers.
//
// The context is created lazily by Init, which must run inside a user
// gesture handler; browsers keep a context created earlier suspended. Until
// Init succeeds every play call is a silent no-op.
type AudioManager struct {
	ctx        *js.Object
	masterGain *js.Object
	musicGain  *js.Object
	ready      bool
	closed     bool
	AudioCtx   *js.Object // Exposed for state checking
	lastErr    error

	// Synth plays one-shot effects on the master bus.
	Synth *Synth
	// Music loops the background song on the music bus.
	Music *Sequencer

	speech *js.Object // Currently playing speech source

	// live is the state/resume view of ctx; Init and Resume only go through it.
	live contextState
	// wantMusic is set by StartMusic and cleared by StopMusic, so a later
	// gesture can start music a failed Init refused.
	wantMusic bool

	// Control panel
	controlPanel *js.Object
}

// contextState is the part of an AudioContext that is polled on every play.
type contextState interface {
	State() string
	Resume()
}

type jsContext struct{ obj *js.Object }

func (c jsContext) State() string { return c.obj.Get("state").String() }
func (c jsContext) Resume()       { c.obj.Call("resume") }

// NewAudioManager creates an audio manager. Nothing touches Web Audio until
// Init.
func NewAudioManager(seed *common.SeededRNG, sched common.Scheduler) *AudioManager {
	am := &AudioManager{}
	am.Synth = NewSynth(am)
	am.Music = NewSequencer(&musicBus{am: am}, sched, ShuffleSong, seed)
	return am
}

// Init creates the AudioContext on first use and resumes it when suspended.
// It is safe to call on every gesture.
func (am *AudioManager) Init() (err error) {
	if am.closed {
		return ErrClosed
	}
	defer func() {
		if r := recover(); r != nil {
			am.ctx = nil
			am.live = nil
			am.ready = false
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
			am.lastErr = err
		}
	}()

	if am.live != nil {
		am.Resume()
		return nil
	}

	if !common.HasBrowser() {
		am.lastErr = ErrUnavailable
		return ErrUnavailable
	}

	// Try to create AudioContext
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		am.lastErr = ErrUnavailable
		return ErrUnavailable
	}

	am.ctx = audioCtx.New()
	am.AudioCtx = am.ctx
	am.masterGain = am.ctx.Call("createGain")
	am.masterGain.Call("connect", am.ctx.Get("destination"))
	am.masterGain.Get("gain").Set("value", AudioConfig.MasterVolume)

	am.musicGain = am.ctx.Call("createGain")
	am.musicGain.Call("connect", am.masterGain)
	am.musicGain.Get("gain").Set("value", 1.0)

	am.live = jsContext{am.ctx}
	am.ready = true
	am.Resume()
	return nil
}

// Ready reports whether sounds will actually play.
func (am *AudioManager) Ready() bool {
	return am.ready
}

// Err returns the last failure seen while talking to Web Audio.
func (am *AudioManager) Err() error {
	return am.lastErr
}

// Resume wakes a suspended context. Safari reports "interrupted" after a
// phone call or a locked screen.
func (am *AudioManager) Resume() {
	if am.live == nil {
		return
	}
	switch am.live.State() {
	case "suspended", "interrupted":
		am.live.Resume()
	}
}

// Now implements Output.
func (am *AudioManager) Now() float64 {
	if !am.ready {
		return 0
	}
	return am.ctx.Get("currentTime").Float()
}

// Emit implements Output on the master bus.
func (am *AudioManager) Emit(ev SoundEvent) {
	am.emitTo(ev, am.masterGain)
}

// musicBus is the Output the sequencer plays on.
type musicBus struct {
	am *AudioManager
}

func (b *musicBus) Now() float64 { return b.am.Now() }

func (b *musicBus) Emit(ev SoundEvent) { b.am.emitTo(ev, b.am.musicGain) }

// emitTo builds the node graph for ev and connects it to dest:
// source -> [lowpass] -> gain -> dest. The graph disconnects itself when
// the source ends.
func (am *AudioManager) emitTo(ev SoundEvent, dest *js.Object) {
	if !am.ready || dest == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			am.lastErr = fmt.Errorf("audio: emit %s: %v", ev.Wave, r)
		}
	}()

	var source *js.Object
	if ev.Wave == WaveNoise {
		source = am.noiseSource(ev)
	} else {
		source = am.ctx.Call("createOscillator")
		source.Set("type", ev.Wave.String())
		automate(source.Get("frequency"), ev.Freq, ev.Start)
	}

	gain := am.ctx.Call("createGain")
	automate(gain.Get("gain"), ev.Gain, ev.Start)

	var filter *js.Object
	if ev.Filter != nil {
		filter = am.ctx.Call("createBiquadFilter")
		filter.Set("type", "lowpass")
		filter.Get("frequency").Call("setValueAtTime", ev.Filter.Cutoff, ev.Start)
		filter.Get("Q").Set("value", ev.Filter.Q)
		source.Call("connect", filter)
		filter.Call("connect", gain)
	} else {
		source.Call("connect", gain)
	}
	gain.Call("connect", dest)

	source.Set("onended", func() {
		source.Call("disconnect")
		if filter != nil {
			filter.Call("disconnect")
		}
		gain.Call("disconnect")
	})
	source.Call("start", ev.Start)
	source.Call("stop", ev.End())
}

// noiseSource fills a mono buffer with the event's seeded noise.
func (am *AudioManager) noiseSource(ev SoundEvent) *js.Object {
	sampleRate := am.ctx.Get("sampleRate").Int()
	length := int(float64(sampleRate) * ev.Duration)
	if length < 1 {
		length = 1
	}
	buffer := am.ctx.Call("createBuffer", 1, length, sampleRate)
	channelData := buffer.Call("getChannelData", 0)
	noise := make([]float32, length)
	common.NewSeededRNG(ev.Seed).Noise(noise)
	for i, v := range noise {
		channelData.SetIndex(i, v)
	}
	source := am.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	return source
}

// automate replays p onto an AudioParam starting at t0.
func automate(param *js.Object, p Param, t0 float64) {
	param.Call("setValueAtTime", p.Start, t0)
	for _, r := range p.Ramps {
		switch r.Curve {
		case Exponential:
			param.Call("exponentialRampToValueAtTime", r.Target, t0+r.At)
		default:
			param.Call("linearRampToValueAtTime", r.Target, t0+r.At)
		}
	}
}

// wake runs Init on behalf of a play call: the context is created if missing
// and resumed if suspended. Music a failed Init refused starts here.
func (am *AudioManager) wake() bool {
	if am.Init() != nil {
		return false
	}
	if am.wantMusic {
		am.Music.Start()
	}
	return true
}

// Play plays one effect. Every call is a chance to create or resume the
// context; on a page without audio it is silent.
func (am *AudioManager) Play(id Effect) {
	if !am.wake() {
		return
	}
	am.Synth.Play(id)
}

// PlayClick, PlayCorrect and PlayWrong play the one-shot effects.
func (am *AudioManager) PlayClick()   { am.Play(EffectClick) }
func (am *AudioManager) PlayCorrect() { am.Play(EffectCorrect) }
func (am *AudioManager) PlayWrong()   { am.Play(EffectWrong) }

// StartMusic creates the context if needed and starts the background loop.
// It is a no-op while the music is already playing.
func (am *AudioManager) StartMusic() {
	am.wantMusic = true
	am.wake()
}

// StopMusic stops the background loop.
func (am *AudioManager) StopMusic() {
	am.wantMusic = false
	am.Music.Stop()
}

// MusicPlaying reports whether the background loop is running.
func (am *AudioManager) MusicPlaying() bool {
	return am.Music.Running()
}

// SetVolume sets the master volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	if am.masterGain == nil {
		return
	}
	am.masterGain.Get("gain").Set("value", clamp01(volume))
}

// SetMusicVolume sets the music bus volume (0.0 to 1.0).
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.musicGain == nil {
		return
	}
	am.musicGain.Get("gain").Set("value", clamp01(volume))
}

// PlayPCM plays signed 16-bit little-endian mono samples, replacing any
// speech still playing.
func (am *AudioManager) PlayPCM(pcm []byte, sampleRate int) (err error) {
	if !am.ready {
		return ErrUnavailable
	}
	frames := len(pcm) / 2
	if frames == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio: play pcm: %v", r)
		}
	}()

	buffer := am.ctx.Call("createBuffer", 1, frames, sampleRate)
	channelData := buffer.Call("getChannelData", 0)
	for i := 0; i < frames; i++ {
		v := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		channelData.SetIndex(i, float64(v)/32768.0)
	}

	if am.speech != nil {
		am.speech.Call("stop")
	}
	gain := am.ctx.Call("createGain")
	gain.Get("gain").Set("value", AudioConfig.SpeechVolume)
	gain.Call("connect", am.masterGain)

	source := am.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", gain)
	source.Set("onended", func() {
		gain.Call("disconnect")
		if am.speech == source {
			am.speech = nil
		}
	})
	am.speech = source
	source.Call("start")
	return nil
}

// Close stops the music and releases the context. Later calls do nothing and
// the manager stays silent afterwards.
func (am *AudioManager) Close() {
	if am.closed {
		return
	}
	am.closed = true
	am.wantMusic = false
	am.Music.Stop()
	if am.ctx != nil {
		func() {
			defer func() { recover() }()
			am.ctx.Call("close")
		}()
	}
	am.ready = false
	am.ctx = nil
	am.live = nil
	am.AudioCtx = nil
	am.masterGain = nil
	am.musicGain = nil
	am.speech = nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
