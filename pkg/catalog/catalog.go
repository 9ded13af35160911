package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/sets"

	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
	"github.com/hypha/chaos-agent/pkg/header"
	"github.com/hypha/chaos-agent/pkg/intent"
)

// ErrUnknownIntent is returned by Lookup for a value outside the Intent set.
var ErrUnknownIntent = errors.New("unknown intent")

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, chaoserrors.Wrap(chaoserrors.ErrCodeConfigurationGap, "failed to parse scenario catalog", err)
	}
	if doc.Kind != "" && doc.Kind != header.KindCatalog {
		return nil, chaoserrors.New(chaoserrors.ErrCodeConfigurationGap,
			fmt.Sprintf("unexpected catalog kind %q, want %q", doc.Kind, header.KindCatalog))
	}
	return New(doc.Scenarios)
}

// New builds a Catalog from scenarios and validates that it covers the
// Intent set exactly.
func New(scenarios []Scenario) (*Catalog, error) {
	entries := make(map[intent.Intent]Scenario, len(scenarios))
	for _, s := range scenarios {
		if _, dup := entries[s.Intent]; dup {
			return nil, chaoserrors.New(chaoserrors.ErrCodeConfigurationGap,
				fmt.Sprintf("duplicate scenario for intent %q", s.Intent))
		}
		entries[s.Intent] = s
	}

	c := &Catalog{entries: entries}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every declared Intent has exactly one well-formed
// Scenario and that no Scenario names an undeclared Intent.
func (c *Catalog) Validate() error {
	declared := intent.Set()
	present := sets.KeySet(c.entries)

	if missing := declared.Difference(present); missing.Len() > 0 {
		return chaoserrors.New(chaoserrors.ErrCodeConfigurationGap,
			fmt.Sprintf("intents without a scenario: %v", sets.List(missing)))
	}
	if extra := present.Difference(declared); extra.Len() > 0 {
		return chaoserrors.New(chaoserrors.ErrCodeConfigurationGap,
			fmt.Sprintf("scenarios for undeclared intents: %v", sets.List(extra)))
	}

	for _, i := range intent.All() {
		s := c.entries[i]
		if s.DurationSeconds <= 0 {
			return chaoserrors.New(chaoserrors.ErrCodeConfigurationGap,
				fmt.Sprintf("scenario %q: duration must be positive, got %d", i, s.DurationSeconds))
		}
		if strings.TrimSpace(s.Invariant) == "" {
			return chaoserrors.New(chaoserrors.ErrCodeConfigurationGap,
				fmt.Sprintf("scenario %q: invariant description is empty", i))
		}
	}

	return nil
}

// Lookup returns the Scenario for i.
func (c *Catalog) Lookup(i intent.Intent) (Scenario, error) {
	s, ok := c.entries[i]
	if !ok {
		return Scenario{}, chaoserrors.Wrap(chaoserrors.ErrCodeInvalidArgument,
			fmt.Sprintf("no scenario for intent %q", i), ErrUnknownIntent)
	}
	return s, nil
}

// Scenarios returns all entries in Intent declaration order.
func (c *Catalog) Scenarios() []Scenario {
	out := make([]Scenario, 0, len(c.entries))
	for _, i := range intent.All() {
		if s, ok := c.entries[i]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Document returns the serializable form of the catalog.
func (c *Catalog) Document() *Document {
	return &Document{
		Header:    *header.New(header.WithKind(header.KindCatalog)),
		Scenarios: c.Scenarios(),
	}
}

// RenderText writes a human-readable listing, one intent per line.
func (d *Document) RenderText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Available intents:"); err != nil {
		return err
	}
	for _, s := range d.Scenarios {
		if _, err := fmt.Fprintf(w, "  %-8s %3ds  %s\n", s.Intent, s.DurationSeconds, s.Invariant); err != nil {
			return err
		}
	}
	return nil
}
