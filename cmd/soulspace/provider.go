package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/soulspace"
	"github.com/fwojciec/soulspace/anthropic"
	"github.com/fwojciec/soulspace/gemini"
	"github.com/fwojciec/soulspace/groq"
)

// apiKeys holds the provider keys found in the environment.
type apiKeys struct {
	groq      string
	gemini    string
	anthropic string
}

// detect returns the only provider with a key, or an error when zero or
// several keys are set.
func (k apiKeys) detect() (string, error) {
	var found []string
	if k.groq != "" {
		found = append(found, "groq")
	}
	if k.gemini != "" {
		found = append(found, "gemini")
	}
	if k.anthropic != "" {
		found = append(found, "anthropic")
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no API key found: set GROQ_API_KEY, GEMINI_API_KEY or ANTHROPIC_API_KEY (or use -provider and -api-key flags)")
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("multiple API keys found (%s): use -provider flag to select", strings.Join(found, ", "))
	}
}

// resolveProvider selects and constructs the provider. All env var values are
// passed in as parameters; env is only read in main().
func resolveProvider(ctx context.Context, providerFlag, apiKeyFlag string, keys apiKeys) (soulspace.Provider, error) {
	provider := providerFlag
	if provider == "" {
		var err error
		if provider, err = keys.detect(); err != nil {
			return nil, err
		}
	}

	// Explicit flag overrides env var.
	key := apiKeyFlag
	switch provider {
	case "groq":
		if key == "" {
			key = keys.groq
		}
		if key == "" {
			return nil, fmt.Errorf("GROQ_API_KEY not set (use -api-key flag or environment variable)")
		}
		return groq.New(key), nil
	case "gemini":
		if key == "" {
			key = keys.gemini
		}
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set (use -api-key flag or environment variable)")
		}
		client, err := gemini.New(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return client, nil
	case "anthropic":
		if key == "" {
			key = keys.anthropic
		}
		if key == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set (use -api-key flag or environment variable)")
		}
		return anthropic.New(key), nil
	default:
		return nil, fmt.Errorf("unknown provider %q: must be \"groq\", \"gemini\" or \"anthropic\"", provider)
	}
}
