package audio

import "math"

// Waveform selects the source of a SoundEvent.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSawtooth
	WaveNoise
)

// String returns the Web Audio oscillator type name.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	case WaveSawtooth:
		return "sawtooth"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// Curve is the interpolation used by a Ramp.
type Curve int

const (
	Linear Curve = iota
	Exponential
)

// Ramp moves a Param from its previous value to Target, arriving At seconds
// after the event starts.
type Ramp struct {
	Curve  Curve
	Target float64
	At     float64
}

// Param is an automated value: Start at offset 0, then each ramp in order.
// Values after the last ramp hold the final target.
type Param struct {
	Start float64
	Ramps []Ramp
}

// Const returns a Param that never changes.
func Const(v float64) Param {
	return Param{Start: v}
}

// LinearTo appends a linear ramp.
func (p Param) LinearTo(target, at float64) Param {
	return p.with(Ramp{Curve: Linear, Target: target, At: at})
}

// ExpTo appends an exponential ramp. Both ends of an exponential ramp must be
// positive, as with AudioParam.exponentialRampToValueAtTime.
func (p Param) ExpTo(target, at float64) Param {
	return p.with(Ramp{Curve: Exponential, Target: target, At: at})
}

func (p Param) with(r Ramp) Param {
	ramps := make([]Ramp, len(p.Ramps), len(p.Ramps)+1)
	copy(ramps, p.Ramps)
	p.Ramps = append(ramps, r)
	return p
}

// At evaluates the param t seconds after the event start.
func (p Param) At(t float64) float64 {
	v0, t0 := p.Start, 0.0
	for _, r := range p.Ramps {
		if t < r.At {
			if r.At <= t0 || t < t0 {
				return v0
			}
			x := (t - t0) / (r.At - t0)
			if r.Curve == Exponential && v0 > 0 && r.Target > 0 {
				return v0 * math.Pow(r.Target/v0, x)
			}
			return v0 + (r.Target-v0)*x
		}
		v0, t0 = r.Target, r.At
	}
	return v0
}

// Peak returns the largest absolute value the param reaches.
func (p Param) Peak() float64 {
	peak := math.Abs(p.Start)
	for _, r := range p.Ramps {
		if a := math.Abs(r.Target); a > peak {
			peak = a
		}
	}
	return peak
}

// Filter is a biquad low-pass stage between the source and the gain.
type Filter struct {
	Cutoff float64
	Q      float64
}

// SoundEvent describes one tone. Events are values: build one, hand it to an
// Output and forget it. The output owns whatever nodes or buffers it
// allocates and releases them once Start+Duration has passed.
type SoundEvent struct {
	Wave     Waveform
	Freq     Param
	Gain     Param
	Filter   *Filter
	Start    float64 // output clock, seconds
	Duration float64
	Seed     uint32 // noise source seed, WaveNoise only
}

// End returns the output clock time at which the event is released.
func (e SoundEvent) End() float64 {
	return e.Start + e.Duration
}

// Tone starts building a pitched event.
func Tone(w Waveform, freq float64) SoundEvent {
	return SoundEvent{Wave: w, Freq: Const(freq), Gain: Const(1)}
}

// Noise starts building a noise burst.
func Noise(seed uint32) SoundEvent {
	return SoundEvent{Wave: WaveNoise, Gain: Const(1), Seed: seed}
}

// WithFreq replaces the frequency automation.
func (e SoundEvent) WithFreq(p Param) SoundEvent {
	e.Freq = p
	return e
}

// WithGain replaces the gain automation.
func (e SoundEvent) WithGain(p Param) SoundEvent {
	e.Gain = p
	return e
}

// LowPass routes the source through a low-pass filter.
func (e SoundEvent) LowPass(cutoff float64) SoundEvent {
	e.Filter = &Filter{Cutoff: cutoff, Q: 1}
	return e
}

// At schedules the event at an absolute output time for d seconds.
func (e SoundEvent) At(start, d float64) SoundEvent {
	e.Start = start
	e.Duration = d
	return e
}

// Output is a destination for sound events. AudioManager drives Web Audio;
// Mixer renders in software.
type Output interface {
	// Now reports the output clock in seconds.
	Now() float64
	// Emit schedules ev. It never blocks on playback and never fails loudly.
	Emit(ev SoundEvent)
}
