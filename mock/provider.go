// Package mock provides test doubles for soulspace interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/fwojciec/soulspace"
)

// Interface compliance check.
var _ soulspace.Provider = (*Provider)(nil)

// Provider is a test double for soulspace.Provider.
// Set CompleteFn before calling Complete.
type Provider struct {
	CompleteFn func(ctx context.Context, req soulspace.Request) (soulspace.Completion, error)
}

// Complete delegates to CompleteFn.
func (p *Provider) Complete(ctx context.Context, req soulspace.Request) (soulspace.Completion, error) {
	return p.CompleteFn(ctx, req)
}

// Reply returns a Provider that always answers with content.
func Reply(content string) *Provider {
	return &Provider{
		CompleteFn: func(context.Context, soulspace.Request) (soulspace.Completion, error) {
			return soulspace.Completion{Content: content}, nil
		},
	}
}

// Fail returns a Provider that always fails with err.
func Fail(err error) *Provider {
	return &Provider{
		CompleteFn: func(context.Context, soulspace.Request) (soulspace.Completion, error) {
			return soulspace.Completion{}, err
		},
	}
}
