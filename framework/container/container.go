package container

import (
	"slices"
	"sync"
)

// Resolver holds named registrations and builds object graphs from them.
//
// It supports:
//   - Instance / Singleton / Contextual / Transient lifetimes
//   - Several registrations per name (resolved together, in order)
//   - Per-call overrides for any name, registered or not
//   - Branching into independent child resolvers
//
// A Resolver is meant to be driven serially. The registry itself is guarded
// so registration and resolution may still be called from different
// goroutines, but no lock is held while factories run.
type Resolver struct {
	mu       sync.RWMutex
	registry []*registration
}

// New creates an empty resolver.
func New() *Resolver {
	return &Resolver{}
}

// ── Registration ──────────────────────────────────────────────────────────────

// Instance registers a pre-built value under one or more names. The value
// is returned as-is by every resolution; no factory is ever called for it.
//
//	r.Instance("config", cfg)
//	r.Instance([]string{"clock", "time"}, realClock{})
func (r *Resolver) Instance(names any, value any) error {
	reg, err := newInstance(collectNames(nil, names), value)
	if err != nil {
		return err
	}
	r.add(reg)
	return nil
}

// Singleton registers a factory whose value is built on first resolution and
// then shared by every later resolution.
//
// names is a string, []string or []any. The remaining arguments carry the
// dependency names and the factory in any of the accepted shapes:
//
//	r.Singleton("db", newDB)
//	r.Singleton("repo", "db", newRepo)
//	r.Singleton("repo", []string{"db", "logger"}, newRepo)
//	r.Singleton([]string{"repo", "users"}, []any{"db", "logger", newRepo})
func (r *Resolver) Singleton(names any, rest ...any) error {
	return r.register(Singleton, names, rest)
}

// Contextual registers a factory whose value is shared within one
// resolution and rebuilt for the next. Accepts the same arguments as
// Singleton.
func (r *Resolver) Contextual(names any, rest ...any) error {
	return r.register(Contextual, names, rest)
}

// Transient registers a factory that is called every time its name is
// resolved. Accepts the same arguments as Singleton.
func (r *Resolver) Transient(names any, rest ...any) error {
	return r.register(Transient, names, rest)
}

// Register registers a factory with an explicit lifetime. For Instance, the
// first element of rest is the value.
func (r *Resolver) Register(l Lifetime, names any, rest ...any) error {
	if l == Instance {
		var value any
		if len(rest) > 0 {
			value = rest[0]
		}
		return r.Instance(names, value)
	}
	return r.register(l, names, rest)
}

func (r *Resolver) register(l Lifetime, names any, rest []any) error {
	reg, err := newRegistration(l, parseRegistration(names, rest))
	if err != nil {
		return err
	}
	r.add(reg)
	return nil
}

func (r *Resolver) add(reg *registration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registry = append(r.registry, reg)
}

// ── Branching ─────────────────────────────────────────────────────────────────

// Branch returns a child resolver seeded with copies of every registration
// in r. Instance values carry over; Singleton and Contextual caches do not,
// so the child builds its own. Later registrations or resolutions on either
// resolver never affect the other.
//
//	scope := root.Branch()
//	scope.Instance("request", req)
func (r *Resolver) Branch() *Resolver {
	r.mu.RLock()
	defer r.mu.RUnlock()

	child := &Resolver{registry: make([]*registration, len(r.registry))}
	for i, reg := range r.registry {
		child.registry[i] = reg.clone()
	}
	return child
}

// snapshot returns the resolution view of the registry. Shared lifetimes
// are referenced as-is; the rest are copied so per-call caches are dropped
// with the view.
func (r *Resolver) snapshot() []*registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*registration, len(r.registry))
	for i, reg := range r.registry {
		if reg.lifetime.shared() {
			records[i] = reg
		} else {
			records[i] = reg.clone()
		}
	}
	return records
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Bound reports whether at least one registration answers to name.
func (r *Resolver) Bound(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.registry {
		if reg.answers(name) {
			return true
		}
	}
	return false
}

// Names returns every registered name, sorted and without duplicates.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, reg := range r.registry {
		out = append(out, reg.names...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Registrations describes the registry in registration order.
func (r *Resolver) Registrations() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, len(r.registry))
	for i, reg := range r.registry {
		out[i] = reg.describe()
	}
	return out
}

// Len returns the number of registrations.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registry)
}
