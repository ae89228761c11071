// Package energize provides tunable options and error definitions for
// reachability over a grid.Network.
package energize

import (
	"context"
	"errors"
)

// ErrNetworkNil is returned if a nil network pointer is passed.
var ErrNetworkNil = errors.New("energize: network is nil")

// Option configures reachability traversal via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing the traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called once per bus when it is dequeued, with its BFS depth
	// from the source.
	OnVisit func(bus int64, depth int)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int64, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked for every energized bus.
func WithOnVisit(fn func(bus int64, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
