package audio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/simukka/ukg-math-adventure/common"
)

// Render synthesizes ev as mono float samples at sampleRate. Sample 0 is the
// event's start; the buffer covers exactly its duration.
func Render(ev SoundEvent, sampleRate int) []float32 {
	n := int(ev.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]float32, n)
	sr := float64(sampleRate)

	if ev.Wave == WaveNoise {
		common.NewSeededRNG(ev.Seed).Noise(buf)
	} else {
		phase := 0.0
		for i := range buf {
			buf[i] = float32(oscillate(ev.Wave, phase))
			phase += ev.Freq.At(float64(i)/sr) / sr
			phase -= math.Floor(phase)
		}
	}

	if ev.Filter != nil {
		newBiquadLowPass(ev.Filter.Cutoff, ev.Filter.Q, sr).process(buf)
	}

	for i := range buf {
		buf[i] *= float32(ev.Gain.At(float64(i) / sr))
	}
	return buf
}

// oscillate returns one cycle of w at phase in [0, 1). All shapes start at 0
// and rise, matching OscillatorNode.
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveTriangle:
		return (2.0 / math.Pi) * math.Asin(math.Sin(2*math.Pi*phase))
	case WaveSawtooth:
		p := phase + 0.5
		return 2*(p-math.Floor(p)) - 1
	}
	return 0
}

// biquad is a direct form I filter.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func newBiquadLowPass(cutoff, q, sampleRate float64) *biquad {
	if q <= 0 {
		q = math.Sqrt2 / 2
	}
	if cutoff >= sampleRate/2 {
		cutoff = sampleRate/2 - 1
	}
	w0 := 2 * math.Pi * cutoff / sampleRate
	cos, sin := math.Cos(w0), math.Sin(w0)
	alpha := sin / (2 * q)
	a0 := 1 + alpha
	return &biquad{
		b0: (1 - cos) / 2 / a0,
		b1: (1 - cos) / a0,
		b2: (1 - cos) / 2 / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

func (f *biquad) process(buf []float32) {
	for i, v := range buf {
		x := float64(v)
		y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
		f.x2, f.x1 = f.x1, x
		f.y2, f.y1 = f.y1, y
		buf[i] = float32(y)
	}
}

// Mixer is a software Output. Emitted events are rendered up front and summed
// into a stereo float32 little-endian stream by Read, which suits an oto
// player. Voices are dropped as soon as they have been fully read.
type Mixer struct {
	mu     sync.Mutex
	rate   int
	frame  int64
	volume float64
	voices []*mixVoice
}

type mixVoice struct {
	start int64
	buf   []float32
}

// NewMixer creates a mixer running at sampleRate.
func NewMixer(sampleRate int) *Mixer {
	return &Mixer{rate: sampleRate, volume: AudioConfig.MasterVolume}
}

// SampleRate returns the mixer's rate.
func (m *Mixer) SampleRate() int { return m.rate }

// Now implements Output. The clock advances as samples are read.
func (m *Mixer) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(m.frame) / float64(m.rate)
}

// Emit implements Output. Events whose start has already been read begin at
// the next unread frame.
func (m *Mixer) Emit(ev SoundEvent) {
	buf := Render(ev, m.rate)
	if len(buf) == 0 {
		return
	}
	start := int64(math.Round(ev.Start * float64(m.rate)))
	m.mu.Lock()
	defer m.mu.Unlock()
	if start < m.frame {
		start = m.frame
	}
	m.voices = append(m.voices, &mixVoice{start: start, buf: buf})
}

// SetVolume sets the output gain, clamped to [0, 1].
func (m *Mixer) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = math.Max(0, math.Min(1, v))
}

// Active returns the number of voices still holding samples.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Read fills p with whole stereo frames. It never returns an error; silence
// is produced while no voice is active.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < frames; i++ {
		at := m.frame + int64(i)
		s := 0.0
		for _, v := range m.voices {
			if j := at - v.start; j >= 0 && j < int64(len(v.buf)) {
				s += float64(v.buf[j])
			}
		}
		s *= m.volume
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		bits := math.Float32bits(float32(s))
		binary.LittleEndian.PutUint32(p[i*8:], bits)
		binary.LittleEndian.PutUint32(p[i*8+4:], bits)
	}
	m.frame += int64(frames)

	live := m.voices[:0]
	for _, v := range m.voices {
		if v.start+int64(len(v.buf)) > m.frame {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live
	return frames * 8, nil
}
