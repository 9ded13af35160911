package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value is an integer seed of arbitrary size. Operator supplied seeds are
// not range-checked, so they may exceed int64. The zero Value is 0.
//
// A Value is immutable once built and safe to copy.
type Value struct {
	n *big.Int
}

// NewValue returns the Value for v.
func NewValue(v int64) Value {
	return Value{n: big.NewInt(v)}
}

// ParseValue parses a base-10 integer with an optional leading sign.
// Surrounding whitespace is ignored.
func ParseValue(s string) (Value, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Value{}, errors.New("empty seed")
	}
	n, ok := new(big.Int).SetString(t, 10)
	if !ok {
		return Value{}, fmt.Errorf("not a base-10 integer: %q", s)
	}
	return Value{n: n}, nil
}

func (v Value) big() *big.Int {
	if v.n == nil {
		return new(big.Int)
	}
	return v.n
}

// String returns the canonical decimal form: no leading '+' or zeros.
func (v Value) String() string {
	return v.big().String()
}

// Int64 returns v as an int64 and whether it fits.
func (v Value) Int64() (int64, bool) {
	n := v.big()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// Equal reports whether v and o hold the same integer.
func (v Value) Equal(o Value) bool {
	return v.big().Cmp(o.big()) == 0
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	return slog.StringValue(v.String())
}

// MarshalJSON encodes v as a bare JSON number, whatever its size.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	parsed, err := ParseValue(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as an untagged plain scalar so values past 64 bits
// are written as digits rather than floats.
func (v Value) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}, nil
}

// UnmarshalYAML accepts any integer scalar.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("seed must be a scalar, got kind %d", node.Kind)
	}
	parsed, err := ParseValue(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
