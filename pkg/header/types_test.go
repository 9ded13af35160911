package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	h := New()
	assert.Equal(t, FullAPIVersion, h.APIVersion)
	assert.Empty(t, h.Kind)
	assert.Nil(t, h.Metadata)
}

func TestNew_Options(t *testing.T) {
	h := New(
		WithKind(KindRecommendation),
		WithMetadata("run-id", "abc"),
		WithMetadata("tool", "netns_chaos.sh"),
	)

	assert.Equal(t, KindRecommendation, h.Kind)
	assert.Equal(t, FullAPIVersion, h.APIVersion)
	assert.Equal(t, map[string]string{"run-id": "abc", "tool": "netns_chaos.sh"}, h.Metadata)
}

func TestFullAPIVersion(t *testing.T) {
	assert.Equal(t, "chaos.hypha.dev/v1alpha1", FullAPIVersion)
}
