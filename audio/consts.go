package audio

import "time"

var AudioConfig = Config{
	// Master settings
	MasterVolume: 1.0,
	MaxPeak:      0.2,

	// One-shot effects
	ClickFreqStart: 800,
	ClickFreqEnd:   400,
	WrongFreqStart: 150,
	WrongFreqEnd:   100,

	// Background music
	MusicTick:     135 * time.Millisecond, // ~111 BPM, double time
	MusicSteps:    16,
	BassNoteTime:  0.15,
	LeadNoteTime:  0.15,
	LeadCutoff:    1500,
	LeadDecayTime: 0.1,
	SnareTime:     0.1,
	KickTime:      0.12,

	// Speech playback
	SpeechSampleRate: 24000,
	SpeechVolume:     1.0,
}
