package intent

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"k8s.io/apimachinery/pkg/util/sets"

	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
)

// maxSuggestionDistance bounds how far a typo may be from a known value
// before we stop offering it as a suggestion.
const maxSuggestionDistance = 2

// Intent is a high-level failure mode requested by the operator.
type Intent string

// Intent values.
const (
	IntentStall Intent = "stall"
	IntentFlap  Intent = "flap"
	IntentChurn Intent = "churn"
	IntentStorm Intent = "storm"
)

// Topology selects the network-namespace arrangement the external tool builds.
type Topology string

// Topology values.
const (
	TopologyPair Topology = "pair"
	TopologyLine Topology = "line"
)

// Transport selects the protocol the external tool exercises.
type Transport string

// Transport values.
const (
	TransportTCP  Transport = "tcp"
	TransportQUIC Transport = "quic"
)

var (
	// declaration order, used for listings
	intents    = []Intent{IntentStall, IntentFlap, IntentChurn, IntentStorm}
	topologies = []Topology{TopologyPair, TopologyLine}
	transports = []Transport{TransportTCP, TransportQUIC}

	intentSet    = sets.New(intents...)
	topologySet  = sets.New(topologies...)
	transportSet = sets.New(transports...)
)

// All returns every Intent in declaration order.
func All() []Intent {
	out := make([]Intent, len(intents))
	copy(out, intents)
	return out
}

// Set returns the closed Intent set.
func Set() sets.Set[Intent] {
	return intentSet.Clone()
}

// String returns the string representation of the intent.
func (i Intent) String() string {
	return string(i)
}

// IsValid reports whether i belongs to the closed Intent set.
func (i Intent) IsValid() bool {
	return intentSet.Has(i)
}

// String returns the string representation of the topology.
func (t Topology) String() string {
	return string(t)
}

// IsValid reports whether t belongs to the closed Topology set.
func (t Topology) IsValid() bool {
	return topologySet.Has(t)
}

// String returns the string representation of the transport.
func (t Transport) String() string {
	return string(t)
}

// IsValid reports whether t belongs to the closed Transport set.
func (t Transport) IsValid() bool {
	return transportSet.Has(t)
}

// SupportedIntents returns the intent names in declaration order.
func SupportedIntents() []string {
	return toStrings(intents)
}

// SupportedTopologies returns the topology names in declaration order.
func SupportedTopologies() []string {
	return toStrings(topologies)
}

// SupportedTransports returns the transport names in declaration order.
func SupportedTransports() []string {
	return toStrings(transports)
}

// ParseIntent validates s against the Intent set.
func ParseIntent(s string) (Intent, error) {
	return parse("intent", s, intentSet, intents)
}

// ParseTopology validates s against the Topology set.
func ParseTopology(s string) (Topology, error) {
	return parse("topology", s, topologySet, topologies)
}

// ParseTransport validates s against the Transport set.
func ParseTransport(s string) (Transport, error) {
	return parse("transport", s, transportSet, transports)
}

func parse[T ~string](kind, s string, set sets.Set[T], ordered []T) (T, error) {
	v := T(s)
	if set.Has(v) {
		return v, nil
	}

	msg := fmt.Sprintf("invalid %s: %q, supported values: %v", kind, s, toStrings(ordered))
	if hint := suggest(s, ordered); hint != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, hint)
	}
	return "", chaoserrors.New(chaoserrors.ErrCodeInvalidArgument, msg)
}

// suggest returns the closest candidate to s, or "" if none is close enough.
func suggest[T ~string](s string, candidates []T) string {
	if s == "" {
		return ""
	}
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(s), string(c))
		if d < bestDist {
			best, bestDist = string(c), d
		}
	}
	return best
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, string(v))
	}
	return out
}
