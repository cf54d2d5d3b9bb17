//go:build !js
// +build !js

package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pion/logging"
)

var (
	ErrNoAPIKey      = errors.New("gemini: no API key configured")
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// Gemini defaults
const (
	DefaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTextModel   = "gemini-3-flash-preview"
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice       = "Kore"
)

// Provider produces the encouragement text and its spoken audio.
type Provider interface {
	Encourage(ctx context.Context, score int, correct bool) (string, error)
	// Speak returns 24 kHz mono signed 16-bit little-endian PCM.
	Speak(ctx context.Context, text string) ([]byte, error)
}

// GeminiClient talks to the generateContent REST endpoint.
type GeminiClient struct {
	APIKey      string
	BaseURL     string
	TextModel   string
	SpeechModel string
	Voice       string
	HTTP        *http.Client
	log         logging.LeveledLogger
}

// NewGeminiClient returns a client with the default models and voice.
func NewGeminiClient(apiKey string, log logging.LeveledLogger) *GeminiClient {
	return &GeminiClient{
		APIKey:      apiKey,
		BaseURL:     DefaultGeminiURL,
		TextModel:   DefaultTextModel,
		SpeechModel: DefaultSpeechModel,
		Voice:       DefaultVoice,
		HTTP:        http.DefaultClient,
		log:         log,
	}
}

type genPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type genContent struct {
	Parts []genPart `json:"parts"`
}

type speechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type genConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type genRequest struct {
	Contents         []genContent `json:"contents"`
	GenerationConfig *genConfig   `json:"generationConfig,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// firstPart returns the first part of the first candidate.
func (r *genResponse) firstPart() (genPart, bool) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return genPart{}, false
	}
	return r.Candidates[0].Content.Parts[0], true
}

// EncouragementPrompt builds the prompt for one answer.
func EncouragementPrompt(score int, correct bool) string {
	if correct {
		return fmt.Sprintf("A 5-year old child just got a math problem right. Their total score is %d. "+
			"Give a very short, enthusiastic 1-sentence praise.", score)
	}
	return "A 5-year old child missed a math problem. Encourage them gently in 1 short sentence to try again."
}

// Encourage asks the text model for one sentence of praise or comfort.
func (c *GeminiClient) Encourage(ctx context.Context, score int, correct bool) (string, error) {
	req := genRequest{Contents: []genContent{{Parts: []genPart{{Text: EncouragementPrompt(score, correct)}}}}}
	resp, err := c.generate(ctx, c.TextModel, req)
	if err != nil {
		return "", err
	}
	part, ok := resp.firstPart()
	text := strings.TrimSpace(part.Text)
	if !ok || text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Speak asks the speech model to read text aloud.
func (c *GeminiClient) Speak(ctx context.Context, text string) ([]byte, error) {
	cfg := &genConfig{ResponseModalities: []string{"AUDIO"}, SpeechConfig: &speechConfig{}}
	cfg.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = c.Voice
	req := genRequest{
		Contents:         []genContent{{Parts: []genPart{{Text: text}}}},
		GenerationConfig: cfg,
	}
	resp, err := c.generate(ctx, c.SpeechModel, req)
	if err != nil {
		return nil, err
	}
	part, ok := resp.firstPart()
	if !ok || part.InlineData == nil || part.InlineData.Data == "" {
		return nil, ErrEmptyResponse
	}
	pcm, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
	if err != nil {
		return nil, fmt.Errorf("gemini: decode audio: %w", err)
	}
	if len(pcm) == 0 {
		return nil, ErrEmptyResponse
	}
	return pcm, nil
}

func (c *GeminiClient) generate(ctx context.Context, model string, body genRequest) (*genResponse, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gemini: encode request: %w", err)
	}
	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.BaseURL, "/"), model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: %s: %w", model, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("gemini: %s: status %d: %s", model, res.StatusCode, strings.TrimSpace(string(msg)))
	}
	var out genResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	if c.log != nil {
		c.log.Tracef("%s answered with %d candidates", model, len(out.Candidates))
	}
	return &out, nil
}
