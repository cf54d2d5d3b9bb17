//go:build !js
// +build !js

// Command soundcheck plays the game's effects and music loop through the
// system audio device.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/pion/logging"
	"github.com/simukka/ukg-math-adventure/audio"
	"github.com/simukka/ukg-math-adventure/common"
)

const (
	sampleRate = 44100
	channels   = 2
	effectGap  = 700 * time.Millisecond
	tail       = 500 * time.Millisecond
)

// effectNames maps -sound values to effects.
var effectNames = map[string]audio.Effect{
	"click":   audio.EffectClick,
	"correct": audio.EffectCorrect,
	"wrong":   audio.EffectWrong,
}

// plan lists what to play for a -sound value.
func plan(sound string) (effects []audio.Effect, music bool, err error) {
	switch sound {
	case "all":
		return []audio.Effect{audio.EffectClick, audio.EffectCorrect, audio.EffectWrong}, true, nil
	case "music":
		return nil, true, nil
	case "effects":
		return []audio.Effect{audio.EffectClick, audio.EffectCorrect, audio.EffectWrong}, false, nil
	}
	if id, ok := effectNames[sound]; ok {
		return []audio.Effect{id}, false, nil
	}
	return nil, false, fmt.Errorf("unknown sound %q", sound)
}

// barDuration is how long one pass of the pattern lasts.
func barDuration(song *audio.Song) time.Duration {
	return time.Duration(song.Steps()) * song.Tick
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run plays what args ask for and returns the process exit code. Usage
// errors return 2 before the audio device is opened.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("soundcheck", flag.ContinueOnError)
	flags.SetOutput(stderr)
	sound := flags.String("sound", "all", "What to play: all, effects, music, click, correct, wrong")
	bars := flags.Int("bars", 2, "Number of music bars to play")
	volume := flags.Float64("volume", audio.AudioConfig.MasterVolume, "Output volume, 0-1")
	seed := flags.Uint("seed", 1, "Noise seed for the snare")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	effects, music, err := plan(*sound)
	if err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return 2
	}

	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = stderr
	log := factory.NewLogger("soundcheck")

	ctx, ready, err := oto.NewContext(sampleRate, channels, oto.FormatFloat32LE)
	if err != nil {
		log.Errorf("audio device: %v", err)
		return 1
	}
	<-ready

	mixer := audio.NewMixer(sampleRate)
	mixer.SetVolume(*volume)
	player := ctx.NewPlayer(mixer)
	player.Play()
	defer player.Close()

	synth := audio.NewSynth(mixer)
	for _, id := range effects {
		if sfx, ok := audio.LookupEffect(id); ok {
			log.Infof("%s (%s): %s", sfx.Name, sfx.Category, sfx.Description)
		}
		synth.Play(id)
		time.Sleep(effectGap)
	}

	if music && *bars > 0 {
		song := audio.ShuffleSong
		seq := audio.NewSequencer(mixer, common.RealScheduler{}, song, common.NewSeededRNG(uint32(*seed)))
		log.Infof("%s: %d bars at %v per step", song.Name, *bars, song.Tick)
		seq.Start()
		time.Sleep(time.Duration(*bars) * barDuration(song))
		seq.Stop()
	}

	time.Sleep(tail)
	if err := player.Err(); err != nil {
		log.Errorf("playback: %v", err)
		return 1
	}
	return 0
}
