package soulspace

import "context"

// Completion is the result of a single completion round trip.
type Completion struct {
	Content    string
	Model      string // model that produced the reply, if reported
	StopReason StopReason
	Usage      Usage
}

// Provider is a strategy pattern interface for completion endpoints.
//
// Implementations classify failures into two buckets: errors wrapping
// ErrMalformedResponse when the endpoint answered without a usable reply,
// and errors wrapping ErrTransport for everything else.
type Provider interface {
	Complete(ctx context.Context, req Request) (Completion, error)
}
