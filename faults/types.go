// Package faults provides options, error definitions, and the fault
// descriptor produced by line selection.
package faults

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Default tuning for bridge-fault selection.
const (
	// DefaultTargetFraction is the fraction of buses a selected fault should
	// ideally de-energize.
	DefaultTargetFraction = 0.10

	// DefaultSampleLimit bounds how many bridge candidates are measured.
	DefaultSampleLimit = 50
)

// Sentinel errors for fault selection.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("faults: network is nil")

	// ErrNoBridge indicates the network is fully biconnected from the
	// source: no single-line fault can disconnect anything. A reported
	// outcome, not a crash; callers decide the fallback.
	ErrNoBridge = errors.New("faults: no bridge line available")

	// ErrNoLines indicates Random found no in-service line to fault.
	ErrNoLines = errors.New("faults: no in-service lines")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("faults: invalid option supplied")
)

// Descriptor identifies a faulted line together with the opaque endpoint
// metadata consumers display. It is the sole input to the disabled set for
// the simulation action that follows.
type Descriptor struct {
	Line      int64
	From      int64
	To        int64
	Name      string
	VoltageKV float64

	// Disconnected is the number of buses the fault is expected to
	// de-energize, as measured during selection. Zero when unmeasured
	// (Random faults and the raw-bridge fallback).
	Disconnected int
}

// Option configures fault selection via functional arguments. Invalid
// options surface as ErrOptionViolation when Select runs.
type Option func(*Options)

// Options holds parameters customizing fault selection.
type Options struct {
	// Ctx allows cancellation between candidate measurements.
	Ctx context.Context

	// Rand is the random source for candidate sampling. When nil, Select
	// seeds one from system entropy.
	Rand *rand.Rand

	// TargetFraction is the desired disconnected share of total buses.
	TargetFraction float64

	// SampleLimit bounds the number of measured bridge candidates.
	SampleLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference tuning: background
// context, entropy-seeded randomness, 10% target, 50-candidate sample.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		TargetFraction: DefaultTargetFraction,
		SampleLimit:    DefaultSampleLimit,
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

// WithRand injects a seedable random source for reproducible selection.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithTargetFraction overrides the desired disconnected share.
//
//	0 < f ≤ 1: valid target
//	otherwise: invalid option → ErrOptionViolation
func WithTargetFraction(f float64) Option {
	return func(o *Options) {
		if f <= 0 || f > 1 {
			o.err = fmt.Errorf("%w: target fraction out of (0,1]: %v", ErrOptionViolation, f)
			return
		}
		o.TargetFraction = f
	}
}

// WithSampleLimit overrides the candidate sample bound (must be ≥ 1).
func WithSampleLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: sample limit must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.SampleLimit = n
	}
}
