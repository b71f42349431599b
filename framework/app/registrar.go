package app

import (
	"errors"
	"slices"

	"github.com/km-arc/modcraft/framework/container"
)

var (
	// ErrModuleAfterStart is returned when a module is registered on an
	// application that has already started.
	ErrModuleAfterStart = errors.New("app: module added after start; use Dependency to register late dependencies")

	// ErrServiceAfterStart is returned when a service is registered on an
	// application that has already started.
	ErrServiceAfterStart = errors.New("app: service added after start; use Dependency to register late dependencies")
)

// Registrar is the registration surface shared by the root resolver and by
// each Application. Modules and services are singletons tagged with the
// "modules" and "services" names so they can be resolved as a group.
//
//	reg.Module("http", []string{"router", "config"}, newHTTPModule)
//	reg.Service("mailer", "config", newMailer)
//	reg.Dependency("unitOfWork", "db", newUnitOfWork)
type Registrar struct {
	resolver *container.Resolver
	sealed   bool
}

// Global returns a Registrar over root, for registrations every Application
// branched from root should inherit.
func Global(root *container.Resolver) *Registrar {
	return &Registrar{resolver: root}
}

// Module registers a singleton under names plus "modules". Modules are
// initialized and started by Application.Start.
func (g *Registrar) Module(names any, rest ...any) error {
	if g.sealed {
		return ErrModuleAfterStart
	}
	return g.resolver.Singleton(and(names, "modules"), rest...)
}

// Service registers a singleton under names plus "services".
func (g *Registrar) Service(names any, rest ...any) error {
	if g.sealed {
		return ErrServiceAfterStart
	}
	return g.resolver.Singleton(and(names, "services"), rest...)
}

// Dependency registers a contextual dependency.
func (g *Registrar) Dependency(names any, rest ...any) error {
	return g.resolver.Contextual(names, rest...)
}

// Instance registers a pre-built value. See container.Resolver.Instance.
func (g *Registrar) Instance(names any, value any) error {
	return g.resolver.Instance(names, value)
}

// Singleton registers a shared factory. See container.Resolver.Singleton.
func (g *Registrar) Singleton(names any, rest ...any) error {
	return g.resolver.Singleton(names, rest...)
}

// Contextual registers a per-resolution factory. See container.Resolver.Contextual.
func (g *Registrar) Contextual(names any, rest ...any) error {
	return g.resolver.Contextual(names, rest...)
}

// Transient registers an always-fresh factory. See container.Resolver.Transient.
func (g *Registrar) Transient(names any, rest ...any) error {
	return g.resolver.Transient(names, rest...)
}

func (g *Registrar) seal() { g.sealed = true }

// and appends tag to the string content of names. Anything that is not a
// string or a slice contributes no names, leaving only the tag.
func and(names any, tag string) []any {
	var out []any
	switch n := names.(type) {
	case string:
		out = []any{n}
	case []string:
		for _, s := range n {
			out = append(out, s)
		}
	case []any:
		out = slices.Clone(n)
	}
	return append(out, tag)
}
