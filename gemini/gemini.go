// Package gemini implements [soulspace.Provider] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between soulspace's
// turns and the Gemini API types.
package gemini

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 200
)
