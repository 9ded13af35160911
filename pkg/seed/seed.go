// Package seed resolves the reproducibility token handed to the external
// fault-injection tool.
//
// An operator supplied seed is passed through untouched, whatever its value.
// Otherwise a seed is drawn uniformly from [defaults.MinSeed, defaults.MaxSeed]
// using an injected Source, so tests can pin the draw.
package seed

import (
	"log/slog"
	"math/rand/v2"

	"github.com/hypha/chaos-agent/pkg/defaults"
)

// Source yields non-negative pseudo-random numbers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Int64N(n int64) int64
}

// globalSource draws from the math/rand/v2 global generator.
type globalSource struct{}

func (globalSource) Int64N(n int64) int64 {
	return rand.Int64N(n)
}

// Seed is a resolved reproducibility token.
type Seed struct {
	// Value is what the external tool receives.
	Value Value
	// Generated is true when Value was drawn rather than supplied.
	Generated bool
}

// Option is a functional option for configuring a Resolver.
type Option func(*Resolver)

// WithSource replaces the random source used for generated seeds.
func WithSource(src Source) Option {
	return func(r *Resolver) {
		if src != nil {
			r.source = src
		}
	}
}

// Resolver produces Seeds.
type Resolver struct {
	source Source
}

// NewResolver returns a Resolver backed by the global generator unless
// WithSource says otherwise.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{source: globalSource{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns *supplied unchanged when it is non-nil, otherwise a
// freshly drawn seed in [defaults.MinSeed, defaults.MaxSeed].
func (r *Resolver) Resolve(supplied *Value) Seed {
	if supplied != nil {
		slog.Debug("using supplied seed", "seed", *supplied)
		return Seed{Value: *supplied}
	}

	v := defaults.MinSeed + r.source.Int64N(defaults.MaxSeed-defaults.MinSeed+1)
	slog.Debug("generated seed", "seed", v)
	return Seed{Value: NewValue(v), Generated: true}
}
