package gemini

import (
	"github.com/fwojciec/soulspace"
	"google.golang.org/genai"
)

// BuildConfig exports buildConfig for testing.
func BuildConfig(req soulspace.Request) *genai.GenerateContentConfig {
	return buildConfig(req, nil)
}
