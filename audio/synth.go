package audio

// Synth plays the game's one-shot effects on an Output.
type Synth struct {
	out Output
}

// NewSynth binds a synthesizer to out.
func NewSynth(out Output) *Synth {
	return &Synth{out: out}
}

// Play emits the effect at the output's current time.
func (s *Synth) Play(id Effect) {
	if s == nil || s.out == nil {
		return
	}
	sfx, ok := LookupEffect(id)
	if !ok {
		return
	}
	for _, ev := range sfx.Build(s.out.Now()) {
		s.out.Emit(ev)
	}
}

// PlayClick plays the keypad click.
func (s *Synth) PlayClick() { s.Play(EffectClick) }

// PlayCorrect plays the right-answer chime.
func (s *Synth) PlayCorrect() { s.Play(EffectCorrect) }

// PlayWrong plays the wrong-answer buzz.
func (s *Synth) PlayWrong() { s.Play(EffectWrong) }
