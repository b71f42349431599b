package container

import (
	"slices"
	"sync"
)

// registration is one named, lifetime-tagged recipe held by a Resolver.
type registration struct {
	names        []string
	dependencies []string
	factory      Factory
	lifetime     Lifetime

	// mu guards the cache. Shared records (Singleton, Instance) may be seen
	// by several resolutions at once.
	mu       sync.Mutex
	resolved bool
	instance any
}

func newRegistration(l Lifetime, c call) (*registration, error) {
	if len(c.names) == 0 {
		return nil, ErrInvalidName
	}
	if c.factory == nil {
		return nil, ErrInvalidFactory
	}
	return &registration{
		names:        c.names,
		dependencies: c.dependencies,
		factory:      c.factory,
		lifetime:     l,
	}, nil
}

func newInstance(names []string, value any) (*registration, error) {
	if len(names) == 0 {
		return nil, ErrInvalidName
	}
	return &registration{
		names:    names,
		lifetime: Instance,
		resolved: true,
		instance: value,
	}, nil
}

func (r *registration) answers(name string) bool {
	return slices.Contains(r.names, name)
}

func (r *registration) cached() (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.instance, r.resolved
}

// store caches v unless another resolution got there first, and returns
// whichever value is now cached.
func (r *registration) store(v any) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.resolved {
		r.instance = v
		r.resolved = true
	}
	return r.instance
}

// clone copies the recipe. Instance records keep their value; every other
// lifetime starts unresolved.
func (r *registration) clone() *registration {
	c := &registration{
		names:        r.names,
		dependencies: r.dependencies,
		factory:      r.factory,
		lifetime:     r.lifetime,
	}
	if r.lifetime == Instance {
		c.instance, c.resolved = r.cached()
	}
	return c
}

// Descriptor describes a registration without exposing it.
type Descriptor struct {
	Names        []string `json:"names"`
	Dependencies []string `json:"dependencies,omitempty"`
	Lifetime     Lifetime `json:"lifetime"`

	// Resolved reports whether a value is cached on the registry's record.
	// Contextual registrations are never resolved here since their values
	// live only as long as a single resolution.
	Resolved bool `json:"resolved"`
}

func (r *registration) describe() Descriptor {
	_, resolved := r.cached()
	return Descriptor{
		Names:        slices.Clone(r.names),
		Dependencies: slices.Clone(r.dependencies),
		Lifetime:     r.lifetime,
		Resolved:     resolved,
	}
}
