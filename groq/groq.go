// Package groq implements [soulspace.Provider] for OpenAI-compatible chat
// completion endpoints, defaulting to Groq's hosted API.
package groq

const (
	defaultBaseURL   = "https://api.groq.com/openai"
	defaultModel     = "llama-3.3-70b-versatile"
	defaultMaxTokens = 200
	completionsPath  = "/v1/chat/completions"
)

// apiRequest is the JSON body sent to the chat completions endpoint.
type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse is the subset of the completion response the client reads.
// Pointers distinguish absent fields from empty ones.
type apiResponse struct {
	Model   string      `json:"model"`
	Choices []apiChoice `json:"choices"`
	Usage   *apiUsage   `json:"usage"`
}

type apiChoice struct {
	Message      *apiReplyMessage `json:"message"`
	FinishReason string           `json:"finish_reason"`
}

type apiReplyMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// apiErrorResponse is the JSON body returned on non-2xx responses.
type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
