// ABOUTME: Groq chat-completions client implementing the TextGenerator interface
// ABOUTME: Speaks the OpenAI-compatible /chat/completions wire format with bearer auth

package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	coreerrors "okcrisis-api/core/errors"
	"okcrisis-api/core/interfaces"
)

// Config holds the generative backend settings.
type Config struct {
	// APIKey is the bearer token; empty constructs a disabled client
	APIKey string

	// BaseURL is the API base, e.g. "https://api.groq.com/openai/v1"
	BaseURL string

	// Model is the model identifier sent with every request
	Model string
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	cfg        Config
	disabled   bool
}

// NewClient creates a text generation client. A missing API key produces
// a disabled client that fails every call immediately; this is logged
// once here rather than on every call.
func NewClient(cfg Config, httpClient interfaces.HTTPClient, logger interfaces.Logger) *Client {
	c := &Client{
		httpClient: httpClient,
		logger:     logger,
		cfg:        cfg,
	}

	if cfg.APIKey == "" {
		c.disabled = true
		if logger != nil {
			logger.Warn("Text generation API key not configured, generation disabled", nil)
		}
	}

	return c
}

// Enabled reports whether the backend is configured.
func (c *Client) Enabled() bool {
	return !c.disabled
}

// chatMessage is one message in the completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the wire format of a completions request.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse is the wire format of a completions response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single prompt and returns the completion text.
func (c *Client) Complete(ctx context.Context, req interfaces.CompletionRequest) (string, error) {
	if c.disabled {
		return "", &coreerrors.NotConfiguredError{Component: "text generation", Missing: "API key"}
	}

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}

	resp, err := c.httpClient.Post(ctx, url, bytes.NewReader(body), headers)
	if err != nil {
		return "", coreerrors.WrapError(err, "completion request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body(), 512))
		return "", &coreerrors.ExternalAPIError{
			API:        "groq",
			StatusCode: resp.StatusCode(),
			Message:    string(msg),
		}
	}

	respBody, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &coreerrors.ParseError{What: "completion response", Message: err.Error()}
	}

	if len(parsed.Choices) == 0 {
		return "", &coreerrors.ParseError{What: "completion response", Message: "no choices returned"}
	}

	content := parsed.Choices[0].Message.Content
	if content == "" {
		return "", &coreerrors.ParseError{What: "completion response", Message: "empty message content"}
	}

	return content, nil
}

// String describes the client for startup logging.
func (c *Client) String() string {
	if c.disabled {
		return "groq (disabled)"
	}
	return fmt.Sprintf("groq (%s)", c.cfg.Model)
}
