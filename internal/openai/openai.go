// Package openai implements the Classifier seam against an
// OpenAI-compatible chat-completions endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"sectorenricher/internal/classifier"
	"sectorenricher/internal/records"
	"sectorenricher/internal/sector"
)

const classifySystemPrompt = "You are a careful classifier. " +
	"Given a public company name and ticker, return ONLY one sector label " +
	"from this exact set: %s."

// ChatCompletionRequest is the request body for the chat-completions endpoint.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// ChatMessage is a single role/content pair in a chat request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse is the subset of the completion response we read.
type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client classifies companies by calling a chat-completions service.
type Client struct {
	apiKey string
	model  string
	client *resty.Client
}

var _ classifier.Classifier = (*Client)(nil)

// NewClient creates a sector classifier backed by the chat-completions
// endpoint at baseURL. The API key is sent as a bearer token and never
// appears in logs or errors. timeout bounds each individual HTTP attempt;
// zero means no per-attempt timeout.
func NewClient(apiKey, model, baseURL string, retry classifier.RetryConfig, timeout time.Duration, log zerolog.Logger) *Client {
	client := classifier.NewHTTPClient(baseURL, retry, log).
		SetAuthToken(apiKey)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		apiKey: apiKey,
		model:  model,
		client: client,
	}
}

// Classify assigns one of the ten fixed sectors to the company. If the
// first answer is not a valid label the model is asked once more with
// stricter phrasing before the row is reported unrecognized.
func (c *Client) Classify(ctx context.Context, company records.MergedRecord) (sector.Sector, error) {
	prompt := fmt.Sprintf("Company: %s (Ticker: %s). Return only one of: %s.",
		company.Name, company.Ticker, sector.List())

	label, err := c.chatComplete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if s, ok := sector.Parse(label); ok {
		return s, nil
	}

	// One stricter re-ask before giving up on the label.
	strict := fmt.Sprintf("Return only the sector label (no punctuation). Company: %s (Ticker: %s).",
		company.Name, company.Ticker)

	label, err = c.chatComplete(ctx, strict)
	if err != nil {
		return "", err
	}
	if s, ok := sector.Parse(label); ok {
		return s, nil
	}

	return "", &classifier.UnrecognizedSectorError{Ticker: company.Ticker, Label: label}
}

// chatComplete sends one prompt and returns the raw completion text.
func (c *Client) chatComplete(ctx context.Context, prompt string) (string, error) {
	body := ChatCompletionRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: fmt.Sprintf(classifySystemPrompt, sector.List())},
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	}

	var result ChatCompletionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", classifier.NewTimeoutError(err)
		}
		return "", classifier.NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return "", classifier.ClassifyHTTPError(resp.StatusCode())
	}

	if len(result.Choices) == 0 {
		return "", classifier.NewValidationError("completion response contains no choices")
	}

	return result.Choices[0].Message.Content, nil
}
