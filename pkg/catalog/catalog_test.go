package catalog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
	"github.com/hypha/chaos-agent/pkg/header"
	"github.com/hypha/chaos-agent/pkg/intent"
)

func TestLookup_EmbeddedValues(t *testing.T) {
	c, err := Load(context.Background())
	require.NoError(t, err)

	tests := []struct {
		intent    intent.Intent
		duration  int
		invariant string
	}{
		{intent.IntentStall, 25, "Massive network stall (80% drop) requiring Spike recovery"},
		{intent.IntentFlap, 20, "Rapid link flapping (up/down) every 500ms"},
		{intent.IntentChurn, 30, "Process churn: kill/restart relay mid-run"},
		{intent.IntentStorm, 40, "Combined stress: high jitter + flapping + churn"},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			s, err := c.Lookup(tt.intent)
			require.NoError(t, err)
			assert.Equal(t, tt.intent, s.Intent)
			assert.Equal(t, tt.duration, s.DurationSeconds)
			assert.Equal(t, tt.invariant, s.Invariant)
		})
	}
}

func TestLookup_TotalOverIntentSet(t *testing.T) {
	c, err := Load(context.Background())
	require.NoError(t, err)

	for _, i := range intent.All() {
		s, err := c.Lookup(i)
		require.NoError(t, err, "intent %s", i)
		assert.Positive(t, s.DurationSeconds, "intent %s", i)
		assert.NotEmpty(t, s.Invariant, "intent %s", i)
	}
}

func TestLookup_UnknownIntent(t *testing.T) {
	c, err := Load(context.Background())
	require.NoError(t, err)

	_, err = c.Lookup(intent.Intent("meltdown"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownIntent))
	assert.Equal(t, chaoserrors.ErrCodeInvalidArgument, chaoserrors.CodeOf(err))
}

func validScenarios() []Scenario {
	return []Scenario{
		{Intent: intent.IntentStall, DurationSeconds: 25, Invariant: "stall"},
		{Intent: intent.IntentFlap, DurationSeconds: 20, Invariant: "flap"},
		{Intent: intent.IntentChurn, DurationSeconds: 30, Invariant: "churn"},
		{Intent: intent.IntentStorm, DurationSeconds: 40, Invariant: "storm"},
	}
}

func TestNew_ConfigurationGaps(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func([]Scenario) []Scenario
		errContain string
	}{
		{
			name:       "missing intent",
			mutate:     func(s []Scenario) []Scenario { return s[:3] },
			errContain: "intents without a scenario: [storm]",
		},
		{
			name: "undeclared intent",
			mutate: func(s []Scenario) []Scenario {
				return append(s, Scenario{Intent: "blackhole", DurationSeconds: 10, Invariant: "x"})
			},
			errContain: "scenarios for undeclared intents: [blackhole]",
		},
		{
			name: "duplicate",
			mutate: func(s []Scenario) []Scenario {
				return append(s, s[0])
			},
			errContain: `duplicate scenario for intent "stall"`,
		},
		{
			name: "zero duration",
			mutate: func(s []Scenario) []Scenario {
				s[1].DurationSeconds = 0
				return s
			},
			errContain: `scenario "flap": duration must be positive`,
		},
		{
			name: "blank invariant",
			mutate: func(s []Scenario) []Scenario {
				s[2].Invariant = "  "
				return s
			},
			errContain: `scenario "churn": invariant description is empty`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(validScenarios()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContain)
			assert.Equal(t, chaoserrors.ErrCodeConfigurationGap, chaoserrors.CodeOf(err))
		})
	}
}

func TestParse_WrongKind(t *testing.T) {
	_, err := Parse([]byte("kind: Recipe\nscenarios: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected catalog kind "Recipe"`)
}

func TestScenarios_DeclarationOrder(t *testing.T) {
	scenarios := validScenarios()
	// reverse input order
	reversed := []Scenario{scenarios[3], scenarios[2], scenarios[1], scenarios[0]}

	c, err := New(reversed)
	require.NoError(t, err)

	got := c.Scenarios()
	require.Len(t, got, 4)
	for i, want := range intent.All() {
		assert.Equal(t, want, got[i].Intent)
	}
}

func TestDocument(t *testing.T) {
	c, err := New(validScenarios())
	require.NoError(t, err)

	doc := c.Document()
	assert.Equal(t, header.KindCatalog, doc.Kind)
	assert.Equal(t, header.FullAPIVersion, doc.APIVersion)
	assert.Len(t, doc.Scenarios, 4)
}

func TestDocument_RenderText(t *testing.T) {
	c, err := Load(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Document().RenderText(&buf))

	want := "Available intents:\n" +
		"  stall     25s  Massive network stall (80% drop) requiring Spike recovery\n" +
		"  flap      20s  Rapid link flapping (up/down) every 500ms\n" +
		"  churn     30s  Process churn: kill/restart relay mid-run\n" +
		"  storm     40s  Combined stress: high jitter + flapping + churn\n"
	assert.Equal(t, want, buf.String())
}
