package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/ukg-math-adventure/audio"
	"github.com/simukka/ukg-math-adventure/common"
)

// ErrNoSpeech is returned by a speaker that cannot talk on this platform.
var ErrNoSpeech = errors.New("game: speech unavailable")

// Speaker reads a message aloud.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// PCMPlayer plays signed 16-bit little-endian mono samples.
type PCMPlayer interface {
	PlayPCM(pcm []byte, sampleRate int) error
}

// SpeechRequest is the body posted to the speech endpoint.
type SpeechRequest struct {
	Text string `json:"text"`
}

// RemoteSpeaker fetches synthesized speech from the game server and plays it.
type RemoteSpeaker struct {
	Endpoint   string
	Client     *http.Client
	Player     PCMPlayer
	SampleRate int
}

// Speak implements Speaker.
func (s *RemoteSpeaker) Speak(ctx context.Context, text string) error {
	if s.Player == nil {
		return ErrNoSpeech
	}
	body, err := json.Marshal(SpeechRequest{Text: text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("speech request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("speech request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("speech request: status %d", resp.StatusCode)
	}

	pcm, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("speech response: %w", err)
	}
	if len(pcm) < 2 {
		return fmt.Errorf("speech response: %d bytes", len(pcm))
	}

	rate := s.SampleRate
	if rate == 0 {
		rate = audio.AudioConfig.SpeechSampleRate
	}
	return s.Player.PlayPCM(pcm, rate)
}

// BrowserSpeaker uses the page's speechSynthesis.
type BrowserSpeaker struct {
	Rate float64
}

// Speak implements Speaker.
func (s *BrowserSpeaker) Speak(ctx context.Context, text string) (err error) {
	if !common.HasBrowser() {
		return ErrNoSpeech
	}
	synth := js.Global.Get("speechSynthesis")
	ctor := js.Global.Get("SpeechSynthesisUtterance")
	if synth == nil || synth == js.Undefined || ctor == nil || ctor == js.Undefined {
		return ErrNoSpeech
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("speech synthesis: %v", r)
		}
	}()

	utterance := ctor.New(text)
	rate := s.Rate
	if rate == 0 {
		rate = 0.9
	}
	utterance.Set("rate", rate)
	synth.Call("speak", utterance)
	return nil
}

// FallbackSpeaker tries each speaker in order until one succeeds. When all of
// them fail the message is skipped; the last error is returned for logging.
type FallbackSpeaker struct {
	Speakers []Speaker
}

// Speak implements Speaker.
func (s *FallbackSpeaker) Speak(ctx context.Context, text string) error {
	err := ErrNoSpeech
	for _, sp := range s.Speakers {
		if sp == nil {
			continue
		}
		if err = sp.Speak(ctx, text); err == nil {
			return nil
		}
		DebugWarn("speech failed:", err.Error())
	}
	return err
}
