package audio

import "time"

// Config holds the tuning knobs of the audio engine. Envelope shapes of the
// individual sounds live with the sounds; this is the mix around them.
type Config struct {
	// Master settings
	MasterVolume float64 // 0.0 - 1.0, applied on the master gain node
	MaxPeak      float64 // Ceiling for any single event's gain automation

	// One-shot effects
	ClickFreqStart float64 // Click pitch at attack
	ClickFreqEnd   float64 // Click pitch at release
	WrongFreqStart float64 // Buzz pitch at attack
	WrongFreqEnd   float64 // Buzz pitch at release

	// Background music
	MusicTick     time.Duration // Step sequencer period
	MusicSteps    int           // Pattern length
	BassNoteTime  float64       // Bass note length in seconds
	LeadNoteTime  float64       // Lead note length in seconds
	LeadCutoff    float64       // Lead low-pass cutoff in Hz
	LeadDecayTime float64       // Lead exponential decay end, seconds after start
	SnareTime     float64       // Snare noise buffer length in seconds
	KickTime      float64       // Kick sweep length in seconds

	// Speech playback
	SpeechSampleRate int     // Sample rate of PCM speech from the provider
	SpeechVolume     float64 // Gain applied to speech buffers
}
