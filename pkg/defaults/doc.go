// Package defaults provides centralized configuration constants for chaos-agent.
//
// This package defines the external tool location, the default network
// arrangement and the bounds used when a seed has to be generated.
// Centralizing these values keeps the CLI, the builder and the tests in
// agreement.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/hypha/chaos-agent/pkg/defaults"
//
//	seed := defaults.MinSeed + src.Int64N(defaults.MaxSeed-defaults.MinSeed+1)
//
// # Seed Guidelines
//
// Generated seeds fall in [MinSeed, MaxSeed]. Operator supplied seeds are
// passed through unchecked, since the external tool owns their meaning.
package defaults
