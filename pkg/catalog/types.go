package catalog

import (
	"github.com/hypha/chaos-agent/pkg/header"
	"github.com/hypha/chaos-agent/pkg/intent"
)

// Scenario is the concrete expansion of an Intent.
type Scenario struct {
	Intent          intent.Intent `json:"intent" yaml:"intent"`
	DurationSeconds int           `json:"durationSeconds" yaml:"durationSeconds"`
	Invariant       string        `json:"invariant" yaml:"invariant"`
}

// Document is the serialized form of a catalog.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// Catalog maps every Intent to exactly one Scenario. It is immutable once
// built; use Parse or Load to obtain one.
type Catalog struct {
	entries map[intent.Intent]Scenario
}
