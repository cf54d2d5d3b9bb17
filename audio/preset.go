package audio

import "time"

// Song is a looping step pattern for the background music.
type Song struct {
	Name string // Preset name for display

	// Melody is the lead line, one entry per step; 0 is a rest.
	Melody []float64

	// Bass alternates between Root for the first half of the pattern and
	// Turn for the second half.
	BassRoot float64
	BassTurn float64

	Tick time.Duration // Step period
}

// ShuffleSong is a fast C minor shuffle.
var ShuffleSong = &Song{
	Name: "C Minor - Shuffle",
	Melody: []float64{
		261.63, 0, 311.13, 261.63,
		392.00, 0, 466.16, 392.00,
		349.23, 311.13, 261.63, 0,
		311.13, 349.23, 392.00, 523.25,
	},
	BassRoot: 65.41, // C2
	BassTurn: 49.00, // G1
	Tick:     AudioConfig.MusicTick,
}

// Steps returns the pattern length.
func (s *Song) Steps() int {
	return len(s.Melody)
}

// KickAt reports whether the kick plays on step.
func (s *Song) KickAt(step int) bool { return step%4 == 0 }

// SnareAt reports whether the snare plays on step.
func (s *Song) SnareAt(step int) bool { return step%4 == 2 }

// BassAt returns the bass frequency for step, or 0 when the bass rests.
func (s *Song) BassAt(step int) float64 {
	if step%2 != 0 {
		return 0
	}
	if step%s.Steps() < s.Steps()/2 {
		return s.BassRoot
	}
	return s.BassTurn
}

// LeadAt returns the melody frequency for step, or 0 for a rest.
func (s *Song) LeadAt(step int) float64 {
	return s.Melody[step%s.Steps()]
}

// Events returns everything that sounds on step, starting at t. seed feeds
// the snare noise.
func (s *Song) Events(step int, t float64, seed uint32) []SoundEvent {
	events := make([]SoundEvent, 0, 4)
	if s.KickAt(step) {
		events = append(events, Kick(t))
	}
	if s.SnareAt(step) {
		events = append(events, Snare(t, seed))
	}
	if f := s.BassAt(step); f > 0 {
		events = append(events, Bass(t, f, AudioConfig.BassNoteTime))
	}
	if f := s.LeadAt(step); f > 0 {
		events = append(events, Lead(t, f))
	}
	return events
}
