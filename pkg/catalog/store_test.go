package catalog

import (
	"context"
	"sync"
	"testing"

	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
)

func resetStore(t *testing.T) {
	t.Helper()
	originalData := catalogData
	t.Cleanup(func() {
		catalogData = originalData
		storeOnce = sync.Once{}
		cachedCatalog = nil
		cachedErr = nil
	})
	storeOnce = sync.Once{}
	cachedCatalog = nil
	cachedErr = nil
}

func TestLoad_EmbeddedCatalogIsExhaustive(t *testing.T) {
	resetStore(t)

	c, err := Load(context.Background())
	if err != nil {
		t.Fatalf("embedded catalog failed validation: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoad_CachesErrorUntilReset(t *testing.T) {
	resetStore(t)

	// 1) Invalid YAML caches the error.
	catalogData = []byte(": this is not valid yaml")
	_, err := Load(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := chaoserrors.CodeOf(err); code != chaoserrors.ErrCodeConfigurationGap {
		t.Errorf("code = %s, want %s", code, chaoserrors.ErrCodeConfigurationGap)
	}

	// 2) Valid data without a reset still returns the cached error.
	catalogData = originalCatalogForTest()
	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected cached error, got nil")
	}

	// 3) After a reset the load succeeds.
	storeOnce = sync.Once{}
	cachedCatalog = nil
	cachedErr = nil

	c, err := Load(context.Background())
	if err != nil {
		t.Fatalf("expected success after reset, got error: %v", err)
	}
	if c == nil {
		t.Fatal("expected catalog, got nil")
	}
}

func TestLoad_ReturnsSameInstance(t *testing.T) {
	resetStore(t)

	a, err := Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected cached catalog instance")
	}
}

func originalCatalogForTest() []byte {
	return []byte(`kind: ScenarioCatalog
scenarios:
  - {intent: stall, durationSeconds: 25, invariant: "a"}
  - {intent: flap, durationSeconds: 20, invariant: "b"}
  - {intent: churn, durationSeconds: 30, invariant: "c"}
  - {intent: storm, durationSeconds: 40, invariant: "d"}
`)
}
