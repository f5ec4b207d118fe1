package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/soulspace"
)

// newLogger opens a text logger writing to path. The TUI owns the terminal,
// so without a path logging is discarded.
func newLogger(path, level string) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "soulspace")
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), f.Close, nil
}

// loginCredentials returns the demo credentials with any non-empty override
// applied.
func loginCredentials(email, password string) soulspace.Credentials {
	creds := soulspace.DefaultCredentials
	if email != "" {
		creds.Email = email
	}
	if password != "" {
		creds.Password = password
	}
	return creds
}

// validateSettings rejects generation settings that every request would fail
// validation on. A negative temperature means the provider default.
func validateSettings(maxTokens int, temperature float64) error {
	req := soulspace.Request{
		Turns:     []soulspace.Turn{{Role: soulspace.RoleUser}},
		MaxTokens: maxTokens,
	}
	if temperature >= 0 {
		req.Temperature = &temperature
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}

// sessionOptions turns command-line settings into session options. A negative
// temperature leaves sampling to the provider.
func sessionOptions(model string, maxTokens int, temperature float64, logger *slog.Logger) []soulspace.Option {
	opts := []soulspace.Option{
		soulspace.WithMaxTokens(maxTokens),
		soulspace.WithLogger(logger),
	}
	if model != "" {
		opts = append(opts, soulspace.WithModel(model))
	}
	if temperature >= 0 {
		opts = append(opts, soulspace.WithTemperature(temperature))
	}
	return opts
}
