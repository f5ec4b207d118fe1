package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/soulspace"
)

// Interface compliance check.
var _ soulspace.Provider = (*Client)(nil)

// Client implements [soulspace.Provider] for an OpenAI-compatible chat
// completions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest and
// for pointing the client at another OpenAI-compatible service.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new [Client] authenticating with the given bearer token.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends one chat completion request and returns the first choice's
// content. Transport and status failures and non-JSON bodies wrap
// [soulspace.ErrTransport]; a JSON response of the wrong shape or without
// content wraps [soulspace.ErrMalformedResponse].
func (c *Client) Complete(ctx context.Context, req soulspace.Request) (soulspace.Completion, error) {
	body, err := c.buildRequestBody(req)
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("groq: %w: %w", soulspace.ErrTransport, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("groq: %w: %w", soulspace.ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("groq: %w: %w", soulspace.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return soulspace.Completion{}, parseHTTPError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("groq: %w: read response: %w", soulspace.ErrTransport, err)
	}
	if !json.Valid(data) {
		return soulspace.Completion{}, fmt.Errorf("groq: %w: response is not JSON", soulspace.ErrTransport)
	}
	// Valid JSON of the wrong shape is an answer without a usable reply.
	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return soulspace.Completion{}, fmt.Errorf("groq: unexpected response shape: %w: %w", soulspace.ErrMalformedResponse, err)
	}
	return convertResponse(apiResp)
}

func (c *Client) buildRequestBody(req soulspace.Request) ([]byte, error) {
	model := req.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return json.Marshal(apiRequest{
		Model:       model,
		Messages:    convertTurns(req.Turns),
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	})
}

func convertTurns(turns []soulspace.Turn) []apiMessage {
	result := make([]apiMessage, len(turns))
	for i, t := range turns {
		result[i] = apiMessage{Role: string(t.Role), Content: t.Content}
	}
	return result
}

func convertResponse(r apiResponse) (soulspace.Completion, error) {
	if len(r.Choices) == 0 {
		return soulspace.Completion{}, fmt.Errorf("groq: no choices: %w", soulspace.ErrMalformedResponse)
	}
	msg := r.Choices[0].Message
	if msg == nil || msg.Content == nil || *msg.Content == "" {
		return soulspace.Completion{}, fmt.Errorf("groq: first choice has no content: %w", soulspace.ErrMalformedResponse)
	}
	c := soulspace.Completion{
		Content:    *msg.Content,
		Model:      r.Model,
		StopReason: stopReason(r.Choices[0].FinishReason),
	}
	if r.Usage != nil {
		c.Usage = soulspace.Usage{
			InputTokens:  r.Usage.PromptTokens,
			OutputTokens: r.Usage.CompletionTokens,
		}
	}
	return c, nil
}

func stopReason(finish string) soulspace.StopReason {
	switch finish {
	case "stop":
		return soulspace.StopEndTurn
	case "length":
		return soulspace.StopLength
	case "content_filter":
		return soulspace.StopFiltered
	default:
		return soulspace.StopUnknown
	}
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("groq: %w: HTTP %d (failed to read body: %w)", soulspace.ErrTransport, resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("groq: %w: HTTP %d: %s", soulspace.ErrTransport, resp.StatusCode, string(body))
	}
	return fmt.Errorf("groq: %w: HTTP %d: %s", soulspace.ErrTransport, resp.StatusCode, apiErr.Error.Message)
}
