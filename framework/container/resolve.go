package container

import (
	"fmt"
	"maps"
	"reflect"
)

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve builds the value registered under name.
//
// It returns the single value when one registration answers to name, a
// []any in registration order when several do, and nil without an error
// when none does. Overrides take precedence over the registry for name and
// for every dependency resolved along the way.
//
//	svc, err := r.Resolve("mailer")
//	svc, err := r.Resolve("mailer", container.Overrides{"transport": fake})
func (r *Resolver) Resolve(name string, overrides ...Overrides) (any, error) {
	return newResolution(r.snapshot(), merge(overrides)).name(name)
}

// ResolveAll is like Resolve but always returns a slice: one element per
// registration answering to name, or a single element for an override.
//
//	modules, err := r.ResolveAll("modules")
func (r *Resolver) ResolveAll(name string, overrides ...Overrides) ([]any, error) {
	values, err := newResolution(r.snapshot(), merge(overrides)).all(name)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []any{}
	}
	return values, nil
}

// Invoke calls a factory that was never registered, resolving its
// dependencies from the registry. Arguments may be dependency names
// (string, []string or []any), the factory itself, and Overrides, in any
// order; the first callable is the factory.
//
//	report, err := r.Invoke([]string{"db", "clock"}, newReport)
//	report, err := r.Invoke("db", newReport, container.Overrides{"clock": fixed})
func (r *Resolver) Invoke(args ...any) (any, error) {
	c := parseInvoke(args)
	if c.factory == nil {
		return nil, ErrUnresolvableConstructor
	}
	return newResolution(r.snapshot(), c.overrides).construct(c.dependencies, c.factory)
}

func merge(overrides []Overrides) Overrides {
	switch len(overrides) {
	case 0:
		return nil
	case 1:
		return overrides[0]
	}
	out := make(Overrides)
	for _, o := range overrides {
		maps.Copy(out, o)
	}
	return out
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// ResolveAs resolves name and asserts the result to T.
//
//	db, err := container.ResolveAs[*sql.DB](r, "db")
func ResolveAs[T any](r *Resolver, name string, overrides ...Overrides) (T, error) {
	var zero T
	o := merge(overrides)

	v, err := r.Resolve(name, o)
	if err != nil {
		return zero, err
	}
	if v == nil {
		if _, overridden := o[name]; overridden || r.Bound(name) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q resolved to %T, want %s", ErrTypeMismatch, name, v, reflect.TypeOf((*T)(nil)).Elem())
	}
	return typed, nil
}

// MustResolve is like ResolveAs but panics on any error. Useful in
// bootstrap code where a missing binding is a programming mistake.
func MustResolve[T any](r *Resolver, name string, overrides ...Overrides) T {
	v, err := ResolveAs[T](r, name, overrides...)
	if err != nil {
		panic(fmt.Sprintf("container: MustResolve[%s]: %v", reflect.TypeOf((*T)(nil)).Elem(), err))
	}
	return v
}
