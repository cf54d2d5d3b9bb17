package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyEncouragement is returned when the provider answers with no text.
var ErrEmptyEncouragement = errors.New("game: empty encouragement")

// Encourager produces a short message for the child after an answer.
type Encourager interface {
	Encourage(ctx context.Context, score int, correct bool) (string, error)
}

// EncouragementRequest is the body posted to the encouragement endpoint.
type EncouragementRequest struct {
	Score   int  `json:"score"`
	Correct bool `json:"correct"`
}

// EncouragementResponse is the endpoint's reply.
type EncouragementResponse struct {
	Text string `json:"text"`
}

// HTTPEncourager asks the game server for a message.
type HTTPEncourager struct {
	Endpoint string
	Client   *http.Client
}

// Encourage implements Encourager.
func (e *HTTPEncourager) Encourage(ctx context.Context, score int, correct bool) (string, error) {
	body, err := json.Marshal(EncouragementRequest{Score: score, Correct: correct})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("encouragement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("encouragement request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("encouragement request: status %d", resp.StatusCode)
	}
	var out EncouragementResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("encouragement response: %w", err)
	}
	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", ErrEmptyEncouragement
	}
	return text, nil
}

// FallbackMessage is the local message used when no provider answers.
func FallbackMessage(correct bool) string {
	if correct {
		return FallbackCorrect
	}
	return FallbackWrong
}

// GetEncouragement asks enc for a message and falls back to FallbackMessage
// on any failure. It never returns an empty string.
func GetEncouragement(ctx context.Context, enc Encourager, score int, correct bool) (msg string) {
	if enc == nil {
		return FallbackMessage(correct)
	}
	defer func() {
		if r := recover(); r != nil {
			DebugWarn("encouragement provider panicked:", fmt.Sprint(r))
			msg = FallbackMessage(correct)
		}
	}()

	text, err := enc.Encourage(ctx, score, correct)
	if err != nil {
		DebugWarn("encouragement failed:", err.Error())
		return FallbackMessage(correct)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackMessage(correct)
	}
	return text
}
