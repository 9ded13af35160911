// Package catalog holds the Intent Catalog: the fixed table that expands a
// failure intent into a scenario duration and the invariant it probes.
//
// # Data
//
// The table lives in data/catalog-v1.yaml and is embedded at build time:
//
//	stall  25s  Massive network stall (80% drop) requiring Spike recovery
//	flap   20s  Rapid link flapping (up/down) every 500ms
//	churn  30s  Process churn: kill/restart relay mid-run
//	storm  40s  Combined stress: high jitter + flapping + churn
//
// # Exhaustiveness
//
// Load parses the table once and validates it against intent.All(). An
// intent without a scenario, a scenario for an undeclared intent, a
// duplicate, a non-positive duration or an empty description fails with
// CONFIGURATION_GAP. The CLI calls Load before doing anything else, and the
// package tests load the embedded table, so a mismatch cannot ship.
//
// # Usage
//
//	cat, err := catalog.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	s, err := cat.Lookup(intent.IntentStall)
//	// s.DurationSeconds == 25
package catalog
