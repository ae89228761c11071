// Package topology provides options, error definitions, and the classified
// feature sets of the GeoJSON loader.
package topology

import (
	"errors"

	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridsim/grid"
)

// Sentinel errors for topology loading.
var (
	// ErrNoLineFeatures indicates the export contains no transmission lines.
	ErrNoLineFeatures = errors.New("topology: no transmission line features")

	// ErrNoBuses indicates line features produced no usable buses.
	ErrNoBuses = errors.New("topology: no buses created")
)

// Default caps on how many features of each class are processed.
const (
	DefaultMaxLines      = 5000
	DefaultMaxMinorLines = 100
	DefaultMaxCables     = 100
)

// Classified groups raw GeoJSON features by their power type.
type Classified struct {
	Lines        []*geojson.Feature
	MinorLines   []*geojson.Feature
	Cables       []*geojson.Feature
	Substations  []*geojson.Feature
	Towers       []*geojson.Feature
	Poles        []*geojson.Feature
	Transformers []*geojson.Feature
	Others       []*geojson.Feature
}

// Result is the loader's output: the built network, the chosen source bus,
// and pruning statistics.
type Result struct {
	Net    *grid.Network
	Source int64

	// Components is how many connected components the raw build had;
	// RemovedBuses counts buses dropped when keeping only the largest.
	Components   int
	RemovedBuses int
}

// Option configures the loader via functional arguments.
type Option func(*Options)

// Options holds loader caps.
type Options struct {
	MaxLines      int
	MaxMinorLines int
	MaxCables     int
}

// DefaultOptions returns the reference caps.
func DefaultOptions() Options {
	return Options{
		MaxLines:      DefaultMaxLines,
		MaxMinorLines: DefaultMaxMinorLines,
		MaxCables:     DefaultMaxCables,
	}
}

// WithMaxLines caps the number of transmission line features processed.
func WithMaxLines(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxLines = n
		}
	}
}
