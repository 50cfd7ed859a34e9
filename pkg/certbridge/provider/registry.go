package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
)

// Factory builds an adapter from decrypted credentials and provider config.
type Factory func(settings Settings) (Adapter, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a factory available under the given slug. New backends hook
// in here without the directory changing.
func Register(slug string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[slug] = factory
}

func factoryFor(slug string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := registry[slug]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for %q%w", slug, model.ErrProviderNotFound)
	}
	return factory, nil
}

// RegisteredSlugs returns every known adapter slug in sorted order.
func RegisteredSlugs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	slugs := make([]string, 0, len(registry))
	for slug := range registry {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
