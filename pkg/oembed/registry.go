package oembed

import (
	"fmt"
	"sort"
	"sync"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
)

// Registry stores providers by the content type they serve, providing
// discovery and duplication safeguards.
type Registry struct {
	mu        sync.RWMutex
	providers map[content.Type]Provider
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[content.Type]Provider),
	}
}

// DefaultRegistry returns a registry with the Twitter and Instagram
// providers installed, sharing the supplied options.
func DefaultRegistry(options ...Option) *Registry {
	registry := NewRegistry()
	registry.MustRegister(NewTwitter(options...))
	registry.MustRegister(NewInstagram(options...))
	return registry
}

// Register adds a provider keyed by its ContentType(). Duplicate types
// return an error.
func (r *Registry) Register(provider Provider) error {
	if provider == nil {
		return fmt.Errorf("oembed: provider is required")
	}
	contentType := provider.ContentType()
	if contentType == "" {
		return fmt.Errorf("oembed: provider content type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[contentType]; exists {
		return fmt.Errorf("oembed: provider for %q already registered", contentType)
	}

	r.providers[contentType] = provider
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(provider Provider) {
	if err := r.Register(provider); err != nil {
		panic(err)
	}
}

// Get retrieves the provider serving a content type.
func (r *Registry) Get(contentType content.Type) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[contentType]
	if !ok {
		return nil, fmt.Errorf("oembed: no provider for %q", contentType)
	}
	return provider, nil
}

// Has reports whether a provider is registered for the content type.
func (r *Registry) Has(contentType content.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[contentType]
	return ok
}

// Types returns the sorted list of content types with a registered
// provider.
func (r *Registry) Types() []content.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]content.Type, 0, len(r.providers))
	for contentType := range r.providers {
		types = append(types, contentType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
