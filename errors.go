package soulspace

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrTransport indicates the completion request could not be completed:
	// the endpoint was unreachable, answered with a non-2xx status, or
	// returned a body that could not be decoded.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse indicates the endpoint answered successfully but
	// the payload carried no usable reply.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIncompleteSurvey indicates a survey submission with missing or
	// out-of-range answers.
	ErrIncompleteSurvey = errors.New("incomplete survey")
)
