// ABOUTME: Client for the generative feedback service (OpenAI Responses API).
// ABOUTME: Degrades to sentinel errors; transport failures never propagate raw.
package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/responses"
	defaultModel   = "gpt-5-mini"
	requestTimeout = 10 * time.Second
)

var (
	// ErrNotConfigured means no API key is set. Feedback is disabled, not
	// broken; all record-keeping works without it.
	ErrNotConfigured = errors.New("feedback not configured: no API key")

	// ErrUnavailable means the service call or response parsing failed.
	ErrUnavailable = errors.New("feedback unavailable")
)

// Tone selects the persona the feedback is written in.
type Tone string

const (
	ToneCoach  Tone = "coach"
	TonePlayer Tone = "player"
	ToneParent Tone = "parent"
	ToneHabit  Tone = "habit"
)

// IsValidTone checks if a string names a feedback tone.
func IsValidTone(s string) bool {
	switch Tone(s) {
	case ToneCoach, TonePlayer, ToneParent, ToneHabit:
		return true
	}
	return false
}

var personas = map[Tone]string{
	ToneCoach:  "You are a basketball coach and data analyst. Keep it short and clear. Focus on actionable feedback.",
	TonePlayer: "You are a player's mental and routine coach. Motivate without exaggerating; be specific.",
	ToneParent: "You are a parent-consultation coach. Be polite and clear. Suggest growth points and tasks to do at home.",
	ToneHabit:  "You are an encouraging daily-routine coach. Celebrate consistency, note one thing to improve tomorrow.",
}

const formatRule = `Use exactly this layout:
[Key Summary] 2 lines
[What Went Well] 3 bullets
[Areas to Improve] 3 bullets
[Next Training Missions] 3 bullets
[Coach's Note] 1 line`

// Client calls the generative text service once per request, synchronously,
// with a fixed timeout and no retry.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewClient creates a feedback client. An empty apiKey yields a client that
// reports ErrNotConfigured without ever touching the network.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model string         `json:"model"`
	Input []message      `json:"input"`
	Text  map[string]any `json:"text"`
}

// Generate turns a payload into natural-language feedback in the given tone.
// Returns ErrNotConfigured with no transport call when the key is absent, and
// ErrUnavailable on any transport or extraction failure.
func (c *Client) Generate(ctx context.Context, payload any, tone Tone) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	persona, ok := personas[tone]
	if !ok {
		persona = personas[ToneCoach]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	reqBody := request{
		Model: c.model,
		Input: []message{
			{Role: "system", Content: persona},
			{Role: "user", Content: fmt.Sprintf(
				"Write feedback based on this data.\nData (JSON):\n%s\n\n%s", data, formatRule)},
		},
		Text: map[string]any{"verbosity": "medium"},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	text, ok := ExtractText(raw)
	if !ok {
		return "", fmt.Errorf("%w: no text in response", ErrUnavailable)
	}
	return text, nil
}
