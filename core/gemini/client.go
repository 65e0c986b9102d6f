package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"Moosic/logger"
)

// ErrNoContent is returned when the service answers but carries no usable
// text candidate. Transport failures are wrapped separately so callers can
// tell the two apart, though both fail the analyze request.
var ErrNoContent = errors.New("no response content from generative service")

// Config contains configuration for the Gemini client.
type Config struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a Gemini client.
func NewClient(config *Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Wire shapes of the generateContent request/response. Only the fields we
// read are declared.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze sends the prompt and extracts the model's text reply. No retries:
// the caller surfaces any failure as a single user-facing error.
func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.config.APIURL, c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("[Gemini] sending generateContent request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call generative service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generative service returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}

	reply := genResp.Candidates[0].Content.Parts[0].Text
	if reply == "" {
		return "", ErrNoContent
	}

	return reply, nil
}
