package container

import (
	"fmt"
	"strings"
)

// resolution is the state of one top-level Resolve, ResolveAll or Invoke
// call. Its records mirror the registry: Singleton and Instance entries are
// the registry's own, so their caches outlive the call, while Contextual and
// Transient entries are private copies. A Contextual value cached on a copy
// is therefore shared by everything built in this call and gone afterwards.
type resolution struct {
	records   []*registration
	overrides Overrides

	// building is the chain of registrations currently under construction,
	// with the name each was requested by.
	building []frame
}

type frame struct {
	name string
	reg  *registration
}

func newResolution(records []*registration, overrides Overrides) *resolution {
	return &resolution{records: records, overrides: overrides}
}

// all resolves every registration answering to name, in registration order.
// An override replaces them all.
func (res *resolution) all(name string) ([]any, error) {
	if v, ok := res.overrides[name]; ok {
		return []any{v}, nil
	}

	var values []any
	for _, reg := range res.records {
		if !reg.answers(name) {
			continue
		}
		v, err := res.build(name, reg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// name resolves name to a single value, a []any when several registrations
// share it, or nil when nothing answers.
func (res *resolution) name(name string) (any, error) {
	values, err := res.all(name)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return values[0], nil
	default:
		return values, nil
	}
}

func (res *resolution) build(name string, reg *registration) (any, error) {
	if v, ok := reg.cached(); ok {
		return v, nil
	}

	res.enter(name, reg)
	v, err := res.construct(reg.dependencies, reg.factory)
	res.building = res.building[:len(res.building)-1]
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", name, err)
	}

	if reg.lifetime.caches() {
		v = reg.store(v)
	}
	return v, nil
}

// construct resolves dependencies in order and passes them to f.
func (res *resolution) construct(dependencies []string, f Factory) (any, error) {
	deps := make([]any, len(dependencies))
	for i, dep := range dependencies {
		v, err := res.name(dep)
		if err != nil {
			return nil, err
		}
		deps[i] = v
	}
	return f(deps...)
}

// enter pushes reg onto the build chain. Requesting a registration that is
// already being built can only recurse forever, so it panics with the chain
// instead.
func (res *resolution) enter(name string, reg *registration) {
	for i, f := range res.building {
		if f.reg != reg {
			continue
		}
		chain := make([]string, 0, len(res.building)-i+1)
		for _, g := range res.building[i:] {
			chain = append(chain, g.name)
		}
		chain = append(chain, name)
		panic(fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(chain, " -> ")))
	}
	res.building = append(res.building, frame{name: name, reg: reg})
}
