package audio

// Music instruments. Each returns a single event starting at t; the
// sequencer layers them, so every peak stays well under AudioConfig.MaxPeak.

// Kick is a sine whose pitch collapses from 150 Hz.
func Kick(t float64) SoundEvent {
	d := AudioConfig.KickTime
	return Tone(WaveSine, 150).
		WithFreq(Const(150).ExpTo(0.01, d)).
		WithGain(Const(0.06).ExpTo(0.001, d)).
		At(t, d)
}

// Snare is a burst of white noise.
func Snare(t float64, seed uint32) SoundEvent {
	d := AudioConfig.SnareTime
	return Noise(seed).
		WithGain(Const(0.02).ExpTo(0.001, d)).
		At(t, d)
}

// Bass is a soft triangle note with a fast attack and a linear fade.
func Bass(t, freq, d float64) SoundEvent {
	return Tone(WaveTriangle, freq).
		WithGain(Const(0).LinearTo(0.03, 0.02).LinearTo(0, d)).
		At(t, d)
}

// Lead is a filtered sawtooth pluck.
func Lead(t, freq float64) SoundEvent {
	return Tone(WaveSawtooth, freq).
		LowPass(AudioConfig.LeadCutoff).
		WithGain(Const(0).LinearTo(0.015, 0.02).ExpTo(0.001, AudioConfig.LeadDecayTime)).
		At(t, AudioConfig.LeadNoteTime)
}
