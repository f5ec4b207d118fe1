package soulspace

import (
	"fmt"
	"math"
)

// Turn is one entry of the message list sent to a completion endpoint.
type Turn struct {
	Role    Role
	Content string
}

// Request carries model selection, the ordered turns and generation
// parameters. The provider uses its own defaults when fields are zero/nil.
type Request struct {
	Model       string // model ID, provider-specific; empty = provider default
	Turns       []Turn
	MaxTokens   int      // 0 = provider default
	Temperature *float64 // nil = provider default
}

// MaxTokensLimit is the largest MaxTokens a request may carry. Gemini encodes
// the limit as a 32-bit integer.
const MaxTokensLimit = math.MaxInt32

// Validate checks universal constraints on Request.
// Provider implementations may apply additional provider-specific validation.
func (r Request) Validate() error {
	if len(r.Turns) == 0 {
		return fmt.Errorf("request has no turns: %w", ErrValidation)
	}
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.MaxTokens < 0 || r.MaxTokens > MaxTokensLimit {
		return fmt.Errorf("max_tokens must be in [0, %d], got %d: %w", MaxTokensLimit, r.MaxTokens, ErrValidation)
	}
	return nil
}

// BuildTurns translates a transcript into the turn list for one round trip:
// the instruction as a single system turn followed by every message in
// order. The last message of history is the user text being submitted.
func BuildTurns(instruction string, history []Message) []Turn {
	turns := make([]Turn, 0, len(history)+1)
	turns = append(turns, Turn{Role: RoleSystem, Content: instruction})
	for _, m := range history {
		role := RoleAssistant
		if m.Role == RoleUser {
			role = RoleUser
		}
		turns = append(turns, Turn{Role: role, Content: m.Text})
	}
	return turns
}
