package catalog

import (
	"context"
	_ "embed"
	"sync"

	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
)

var (
	//go:embed data/catalog-v1.yaml
	catalogData []byte

	storeOnce     sync.Once
	cachedCatalog *Catalog
	cachedErr     error
)

// Load parses and validates the embedded catalog once and returns the
// cached result on every later call.
func Load(_ context.Context) (*Catalog, error) {
	storeOnce.Do(func() {
		cachedCatalog, cachedErr = Parse(catalogData)
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedCatalog == nil {
		return nil, chaoserrors.New(chaoserrors.ErrCodeInternal, "scenario catalog not initialized")
	}
	return cachedCatalog, nil
}
