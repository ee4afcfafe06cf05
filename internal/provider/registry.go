package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// Options carries the session configuration a factory needs to
// construct a provider. Fields irrelevant to a given provider are left
// zero.
type Options struct {
	Runner       azcli.CommandRunner
	Organization string
	Project      string
	Region       string
}

// Factory constructs a provider for one resource kind.
type Factory func(ctx context.Context, kind resource.Kind, opts Options) (Provider, error)

// Registry maps provider names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a named factory, replacing any existing registration.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Resolve constructs the named provider for kind.
func (r *Registry) Resolve(ctx context.Context, name string, kind resource.Kind, opts Options) (Provider, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	p, err := f(ctx, kind, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider %s: %w", name, err)
	}
	return p, nil
}
