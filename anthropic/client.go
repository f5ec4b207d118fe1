package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/soulspace"
)

// Interface compliance check.
var _ soulspace.Provider = (*Client)(nil)

// Client implements [soulspace.Provider] for the Anthropic Messages API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new Anthropic [Client] with the given API key and options.
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

// Complete sends a non-streaming request to the Anthropic Messages API and
// returns the concatenated text blocks of the reply.
func (c *Client) Complete(ctx context.Context, req soulspace.Request) (soulspace.Completion, error) {
	body, err := c.buildRequestBody(req)
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("anthropic: %w: %w", soulspace.ErrTransport, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("anthropic: %w: %w", soulspace.ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("anthropic: %w: %w", soulspace.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return soulspace.Completion{}, parseHTTPError(resp)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return soulspace.Completion{}, fmt.Errorf("anthropic: %w: decode response: %w", soulspace.ErrTransport, err)
	}

	var text strings.Builder
	for _, b := range apiResp.Content {
		if b.Type == "text" {
			text.WriteString(b.Text)
		}
	}
	if text.Len() == 0 {
		return soulspace.Completion{}, fmt.Errorf("anthropic: response has no text: %w", soulspace.ErrMalformedResponse)
	}
	return soulspace.Completion{
		Content:    text.String(),
		Model:      apiResp.Model,
		StopReason: stopReason(apiResp.StopReason),
		Usage: soulspace.Usage{
			InputTokens:  apiResp.Usage.InputTokens,
			OutputTokens: apiResp.Usage.OutputTokens,
		},
	}, nil
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

	system, messages := convertTurns(req.Turns)
	return json.Marshal(apiRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		System:      system,
		Messages:    messages,
		Temperature: req.Temperature,
	})
}

// convertTurns moves system turns into system blocks and merges consecutive
// turns of the same role. The Messages API requires the conversation to open
// with a user turn, so assistant turns preceding the first user turn are
// carried as additional system blocks.
func convertTurns(turns []soulspace.Turn) ([]apiContentBlock, []apiMessage) {
	var (
		system   []apiContentBlock
		messages []apiMessage
	)
	for _, t := range turns {
		block := apiContentBlock{Type: "text", Text: t.Content}
		switch {
		case t.Role == soulspace.RoleSystem:
			system = append(system, block)
		case t.Role == soulspace.RoleAssistant && len(messages) == 0:
			system = append(system, block)
		default:
			role := "user"
			if t.Role == soulspace.RoleAssistant {
				role = "assistant"
			}
			if n := len(messages); n > 0 && messages[n-1].Role == role {
				messages[n-1].Content = append(messages[n-1].Content, block)
				continue
			}
			messages = append(messages, apiMessage{Role: role, Content: []apiContentBlock{block}})
		}
	}
	return system, messages
}

func stopReason(reason *string) soulspace.StopReason {
	if reason == nil {
		return soulspace.StopUnknown
	}
	switch *reason {
	case "end_turn", "stop_sequence":
		return soulspace.StopEndTurn
	case "max_tokens":
		return soulspace.StopLength
	case "refusal":
		return soulspace.StopFiltered
	default:
		return soulspace.StopUnknown
	}
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic: %w: HTTP %d (failed to read body: %w)", soulspace.ErrTransport, resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Type == "" {
		return fmt.Errorf("anthropic: %w: HTTP %d: %s", soulspace.ErrTransport, resp.StatusCode, string(body))
	}
	return fmt.Errorf("anthropic: %w: %s: %s", soulspace.ErrTransport, apiErr.Error.Type, apiErr.Error.Message)
}
