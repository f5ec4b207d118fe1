package gemini

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fwojciec/soulspace"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ soulspace.Provider = (*Client)(nil)

// Client implements [soulspace.Provider] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

type options struct {
	model   string
	baseURL string
}

// Option configures a [Client].
type Option func(*options)

// WithModel sets the default model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(o *options) { o.model = model }
}

// WithBaseURL overrides the API endpoint. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	o := options{model: defaultModel}
	for _, opt := range opts {
		opt(&o)
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if o.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}
	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: gc, model: o.model}, nil
}

// Complete sends a single GenerateContent request and returns the text of
// the first candidate.
func (c *Client) Complete(ctx context.Context, req soulspace.Request) (soulspace.Completion, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	system, contents := ConvertTurns(req.Turns)
	resp, err := c.client.Models.GenerateContent(ctx, model, contents, buildConfig(req, system))
	if err != nil {
		return soulspace.Completion{}, fmt.Errorf("gemini: %w: %w", soulspace.ErrTransport, err)
	}

	text := ExtractText(resp)
	if text == "" {
		return soulspace.Completion{}, fmt.Errorf("gemini: response has no text: %w", soulspace.ErrMalformedResponse)
	}
	comp := soulspace.Completion{
		Content:    text,
		Model:      resp.ModelVersion,
		StopReason: StopReason(resp),
	}
	if u := resp.UsageMetadata; u != nil {
		comp.Usage = soulspace.Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
		}
	}
	return comp, nil
}

func buildConfig(req soulspace.Request, system *genai.Content) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	maxTokens = min(maxTokens, math.MaxInt32)

	config := &genai.GenerateContentConfig{
		MaxOutputTokens:   int32(maxTokens),
		SystemInstruction: system,
	}

	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}

	return config
}

// ConvertTurns splits turns into a system instruction and genai Contents.
// System turns are joined into one instruction; assistant turns use the
// "model" role. Exported for testing.
func ConvertTurns(turns []soulspace.Turn) (*genai.Content, []*genai.Content) {
	var (
		system   []string
		contents []*genai.Content
	)
	for _, t := range turns {
		switch t.Role {
		case soulspace.RoleSystem:
			system = append(system, t.Content)
		case soulspace.RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: t.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: t.Content}},
			})
		}
	}
	if len(system) == 0 {
		return nil, contents
	}
	return &genai.Content{
		Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
	}, contents
}

// ExtractText concatenates the non-thought text parts of the first
// candidate. Returns empty string when there is none. Exported for testing.
func ExtractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// StopReason maps the first candidate's finish reason.
func StopReason(resp *genai.GenerateContentResponse) soulspace.StopReason {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return soulspace.StopUnknown
	}
	switch resp.Candidates[0].FinishReason {
	case genai.FinishReasonStop:
		return soulspace.StopEndTurn
	case genai.FinishReasonMaxTokens:
		return soulspace.StopLength
	case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
		return soulspace.StopFiltered
	default:
		return soulspace.StopUnknown
	}
}
