package soulspace

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// State is the observable phase of a Session.
type State int

const (
	StateIdle          State = iota // Accepting submissions.
	StateAwaitingReply              // A round trip is outstanding.
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingReply:
		return "awaiting_reply"
	default:
		return "unknown"
	}
}

// Session is a single conversation with the assistant. It owns the
// transcript and allows at most one outstanding round trip at a time.
//
// The transcript starts with a greeting and grows by one user message per
// accepted submission and one assistant message per resolved round trip.
// Failed round trips append FallbackNoReply or FallbackConnection instead of
// returning an error, so the session never enters a failed state.
//
// Session is safe for concurrent use: a view may read the transcript while a
// round trip is resolving on another goroutine.
type Session struct {
	id          string
	username    string
	provider    Provider
	model       string
	instruction string
	maxTokens   int
	temperature *float64
	logger      *slog.Logger
	now         func() time.Time

	busy atomic.Bool

	mu         sync.RWMutex
	transcript []Message
}

// Option configures a [Session].
type Option func(*Session)

// WithModel sets the model ID sent with every request. Empty string means the
// provider uses its default model.
func WithModel(model string) Option {
	return func(s *Session) { s.model = model }
}

// WithMaxTokens overrides DefaultMaxTokens.
func WithMaxTokens(n int) Option {
	return func(s *Session) { s.maxTokens = n }
}

// WithSystemInstruction overrides SystemInstruction.
func WithSystemInstruction(instruction string) Option {
	return func(s *Session) { s.instruction = instruction }
}

// WithTemperature sets the sampling temperature sent with every request.
func WithTemperature(t float64) Option {
	return func(s *Session) { s.temperature = &t }
}

// WithLogger sets the logger. Sessions log to a discard handler by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock sets the function used to timestamp messages.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a Session for username whose transcript holds only the
// greeting. No request is issued.
func New(username string, provider Provider, opts ...Option) *Session {
	s := &Session{
		id:          uuid.Must(uuid.NewV7()).String(),
		username:    username,
		provider:    provider,
		instruction: SystemInstruction,
		maxTokens:   DefaultMaxTokens,
		logger:      slog.New(slog.DiscardHandler),
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("session", s.id)
	s.transcript = []Message{{
		Role:      RoleAssistant,
		Text:      Greeting(username),
		Timestamp: s.now(),
	}}
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Username returns the name the session was created for.
func (s *Session) Username() string { return s.username }

// Busy reports whether a round trip is outstanding.
func (s *Session) Busy() bool { return s.busy.Load() }

// State returns StateAwaitingReply while a round trip is outstanding and
// StateIdle otherwise.
func (s *Session) State() State {
	if s.busy.Load() {
		return StateAwaitingReply
	}
	return StateIdle
}

// Transcript returns a copy of the messages exchanged so far, oldest first.
func (s *Session) Transcript() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transcript)
}

// Send submits text and blocks until the round trip resolves. It returns
// false without doing anything when text is blank or another round trip is
// outstanding.
func (s *Session) Send(ctx context.Context, text string) bool {
	ex, ok := s.Begin(text)
	if !ok {
		return false
	}
	ex.Resolve(ctx)
	return true
}

// Begin appends text as a user message, marks the session busy and returns
// the pending round trip. The caller must call Resolve on the returned
// Exchange; until then every further Begin is refused.
//
// Begin returns false without doing anything when text is blank or another
// round trip is outstanding.
func (s *Session) Begin(text string) (*Exchange, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	s.mu.Lock()
	if !s.busy.CompareAndSwap(false, true) {
		s.mu.Unlock()
		s.logger.Debug("submission refused while awaiting reply")
		return nil, false
	}
	s.transcript = append(s.transcript, Message{
		Role:      RoleUser,
		Text:      text,
		Timestamp: s.now(),
	})
	turns := BuildTurns(s.instruction, s.transcript)
	s.mu.Unlock()

	s.logger.Debug("submission accepted", "turns", len(turns))

	return &Exchange{
		session: s,
		req: Request{
			Model:       s.model,
			Turns:       turns,
			MaxTokens:   s.maxTokens,
			Temperature: s.temperature,
		},
	}, true
}

// Exchange is a round trip started by [Session.Begin].
type Exchange struct {
	session *Session
	req     Request

	once  sync.Once
	reply Message
}

// Request returns the request the exchange sends.
func (e *Exchange) Request() Request {
	req := e.req
	req.Turns = slices.Clone(e.req.Turns)
	return req
}

// Resolve issues the request, appends the reply (or a fallback) to the
// transcript and clears the busy flag. It returns the appended message.
// Subsequent calls return the same message without issuing another request.
func (e *Exchange) Resolve(ctx context.Context) Message {
	e.once.Do(func() {
		e.reply = e.session.resolve(ctx, e.req)
	})
	return e.reply
}

type outcome string

const (
	outcomeReply     outcome = "reply"
	outcomeMalformed outcome = "malformed_response"
	outcomeTransport outcome = "transport_failure"
)

func (s *Session) resolve(ctx context.Context, req Request) Message {
	start := time.Now()
	comp, err := s.complete(ctx, req)
	text, oc := classify(comp, err)

	attrs := []any{
		"outcome", string(oc),
		"duration", time.Since(start),
	}
	if err != nil {
		s.logger.Warn("round trip failed", append(attrs, "error", err)...)
	} else {
		s.logger.Info("round trip resolved", append(attrs,
			"model", comp.Model,
			"stop_reason", string(comp.StopReason),
			"input_tokens", comp.Usage.InputTokens,
			"output_tokens", comp.Usage.OutputTokens,
		)...)
	}

	msg := Message{Role: RoleAssistant, Text: text, Timestamp: s.now()}

	s.mu.Lock()
	s.transcript = append(s.transcript, msg)
	s.busy.Store(false)
	s.mu.Unlock()

	return msg
}

func (s *Session) complete(ctx context.Context, req Request) (Completion, error) {
	if err := req.Validate(); err != nil {
		return Completion{}, err
	}
	return s.provider.Complete(ctx, req)
}

// classify maps a provider result onto the text to append.
func classify(c Completion, err error) (string, outcome) {
	switch {
	case err == nil && c.Content != "":
		return c.Content, outcomeReply
	case err == nil, errors.Is(err, ErrMalformedResponse):
		return FallbackNoReply, outcomeMalformed
	default:
		return FallbackConnection, outcomeTransport
	}
}
