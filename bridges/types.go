// Package bridges provides options and error definitions for bridge
// detection over a grid.Network.
package bridges

import (
	"context"
	"errors"
)

// ErrNetworkNil is returned if a nil network pointer is passed.
var ErrNetworkNil = errors.New("bridges: network is nil")

// Option configures bridge detection via functional arguments.
type Option func(*Options)

// Options holds parameters customizing the detection run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per visited bus.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
