package audio

// Effect identifies a one-shot sound.
type Effect int

const (
	EffectClick Effect = iota
	EffectCorrect
	EffectWrong
)

func (e Effect) String() string {
	switch e {
	case EffectClick:
		return "Click"
	case EffectCorrect:
		return "Correct"
	case EffectWrong:
		return "Wrong"
	default:
		return "Unknown"
	}
}

// SoundEffect is a catalogued one-shot sound.
type SoundEffect struct {
	ID          Effect
	Name        string // Human-readable name
	Category    string // Category for grouping (UI, Feedback)
	Description string // What the sound is used for
	Wave        Waveform

	// Build returns the events that make up the sound, starting at now.
	Build func(now float64) []SoundEvent
}

// SoundEffectLibrary lists every one-shot sound in the game.
var SoundEffectLibrary = []SoundEffect{
	{
		ID:          EffectClick,
		Name:        "Click",
		Category:    "UI",
		Description: "Keypad, clear and mode buttons",
		Wave:        WaveSine,
		Build:       ClickEvents,
	},
	{
		ID:          EffectCorrect,
		Name:        "Correct",
		Category:    "Feedback",
		Description: "C major arpeggio for a right answer",
		Wave:        WaveTriangle,
		Build:       CorrectEvents,
	},
	{
		ID:          EffectWrong,
		Name:        "Wrong",
		Category:    "Feedback",
		Description: "Falling buzz for a wrong answer",
		Wave:        WaveSawtooth,
		Build:       WrongEvents,
	},
}

// LookupEffect returns the library entry for id.
func LookupEffect(id Effect) (SoundEffect, bool) {
	for _, sfx := range SoundEffectLibrary {
		if sfx.ID == id {
			return sfx, true
		}
	}
	return SoundEffect{}, false
}

// ClickEvents is a short sine blip falling an octave.
func ClickEvents(now float64) []SoundEvent {
	const d = 0.1
	ev := Tone(WaveSine, AudioConfig.ClickFreqStart).
		WithFreq(Const(AudioConfig.ClickFreqStart).ExpTo(AudioConfig.ClickFreqEnd, d)).
		WithGain(Const(0.1).ExpTo(0.01, d)).
		At(now, d)
	return []SoundEvent{ev}
}

// correctNotes is C5 E5 G5 with start offsets and lengths.
var correctNotes = []struct {
	freq, offset, length float64
}{
	{523.25, 0, 0.2},
	{659.25, 0.1, 0.2},
	{783.99, 0.2, 0.4},
}

// CorrectEvents is a rising triangle arpeggio.
func CorrectEvents(now float64) []SoundEvent {
	events := make([]SoundEvent, 0, len(correctNotes))
	for _, n := range correctNotes {
		ev := Tone(WaveTriangle, n.freq).
			WithGain(Const(0).LinearTo(0.2, 0.05).ExpTo(0.01, n.length)).
			At(now+n.offset, n.length)
		events = append(events, ev)
	}
	return events
}

// WrongEvents is a low sawtooth sliding down while it fades.
func WrongEvents(now float64) []SoundEvent {
	const d = 0.3
	ev := Tone(WaveSawtooth, AudioConfig.WrongFreqStart).
		WithFreq(Const(AudioConfig.WrongFreqStart).LinearTo(AudioConfig.WrongFreqEnd, d)).
		WithGain(Const(0.08).LinearTo(0, d)).
		At(now, d)
	return []SoundEvent{ev}
}
