// Command soulspace runs the SoulSpace wellbeing assistant in the terminal.
//
// Usage:
//
//	GROQ_API_KEY=gsk-...     soulspace [flags]
//	GEMINI_API_KEY=gk-...    soulspace [flags]
//	ANTHROPIC_API_KEY=sk-... soulspace [flags]
//
// Variables in a .env file in the working directory are loaded first.
//
// Flags:
//
//	-provider string     Provider: groq, gemini, anthropic (auto-detected from env vars if omitted)
//	-api-key string      API key (overrides provider's env var)
//	-model string        Model ID (default: provider default)
//	-max-tokens int      Reply length limit in tokens (default 200)
//	-temperature float   Sampling temperature, 0 to 2 (default: provider default)
//	-log string          Path to log file (default: $SOULSPACE_LOG, logging off if empty)
//	-log-level string    debug, info, warn or error (default info)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/soulspace"
	bt "github.com/fwojciec/soulspace/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "soulspace: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var (
		providerFlag = flag.String("provider", "", "Provider: groq, gemini, anthropic (auto-detected from env vars if omitted)")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
		model        = flag.String("model", "", "Model ID (provider-specific)")
		maxTokens    = flag.Int("max-tokens", soulspace.DefaultMaxTokens, "Reply length limit in tokens")
		temperature  = flag.Float64("temperature", -1, "Sampling temperature, 0 to 2 (negative uses provider default)")
		logPath      = flag.String("log", os.Getenv("SOULSPACE_LOG"), "Path to log file")
		logLevel     = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	if err := validateSettings(*maxTokens, *temperature); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, closeLog, err := newLogger(*logPath, *logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Env vars are read here and passed as values.
	provider, err := resolveProvider(ctx, *providerFlag, *apiKey, apiKeys{
		groq:      os.Getenv("GROQ_API_KEY"),
		gemini:    os.Getenv("GEMINI_API_KEY"),
		anthropic: os.Getenv("ANTHROPIC_API_KEY"),
	})
	if err != nil {
		return err
	}

	opts := sessionOptions(*model, *maxTokens, *temperature, logger)
	cfg := bt.Config{
		Credentials: loginCredentials(os.Getenv("SOULSPACE_LOGIN_EMAIL"), os.Getenv("SOULSPACE_LOGIN_PASSWORD")),
		Survey:      soulspace.DefaultSurvey(),
		NewSession: func(username string) *soulspace.Session {
			s := soulspace.New(username, provider, opts...)
			logger.Info("session started", "session", s.ID(), "user", username)
			return s
		},
		Theme: soulspace.DefaultTheme(),
	}

	if err := bt.Run(ctx, bt.New(cfg)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
