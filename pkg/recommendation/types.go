package recommendation

import (
	"github.com/hypha/chaos-agent/pkg/header"
	"github.com/hypha/chaos-agent/pkg/intent"
	"github.com/hypha/chaos-agent/pkg/seed"
)

// Metadata keys set on every Recommendation header.
const (
	MetadataRunID     = "run-id"
	MetadataGenerator = "generator"
)

// Recommendation is the operator-facing result: the scenario chosen for an
// intent and the exact command that runs it.
type Recommendation struct {
	header.Header `json:",inline" yaml:",inline"`

	Intent        intent.Intent    `json:"intent" yaml:"intent"`
	Topology      intent.Topology  `json:"topology" yaml:"topology"`
	Transport     intent.Transport `json:"transport" yaml:"transport"`
	Seed          seed.Value       `json:"seed" yaml:"seed"`
	SeedGenerated bool             `json:"seedGenerated" yaml:"seedGenerated"`

	DurationSeconds int    `json:"durationSeconds" yaml:"durationSeconds"`
	Invariant       string `json:"invariant" yaml:"invariant"`

	Tool string `json:"tool" yaml:"tool"`
	// Command is the argv of the external tool invocation:
	// tool, topology, transport, seed, duration.
	Command     []string `json:"command" yaml:"command"`
	CommandLine string   `json:"commandLine" yaml:"commandLine"`

	// RunID is derived from intent, topology, transport and seed only, so a
	// replay with the same seed carries the same ID.
	RunID string `json:"runId" yaml:"runId"`
}

// Request carries the validated operator input for one recommendation.
type Request struct {
	Intent    intent.Intent
	Topology  intent.Topology
	Transport intent.Transport
	// Seed is nil when the operator did not supply one.
	Seed *seed.Value
}
