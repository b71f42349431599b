// Package container provides a name-based dependency resolver.
//
// # Overview
//
// Registrations pair one or more names with a factory and the names of the
// factory's dependencies. Resolving a name builds its dependencies first,
// recursively, and passes them to the factory positionally. There is no
// type-driven auto-wiring: dependencies are always declared by name.
//
// # Lifetimes
//
//	// Instance — a pre-built value, returned as-is
//	r.Instance("config", cfg)
//
//	// Singleton — built once, shared by every resolution
//	r.Singleton("db", "config", newDB)
//
//	// Contextual — built once per Resolve/Invoke call, shared inside it
//	r.Contextual("unitOfWork", "db", newUnitOfWork)
//
//	// Transient — built every time it is needed
//	r.Transient("request", newRequest)
//
// # Argument shapes
//
// Names and dependency names may be given as a string, a []string or a
// []any; the factory may sit anywhere among the trailing arguments, even
// inside a []any next to the dependency names:
//
//	r.Singleton("repo", newRepo)
//	r.Singleton("repo", "db", newRepo)
//	r.Singleton([]string{"repo", "users"}, []string{"db", "logger"}, newRepo)
//	r.Singleton("repo", []any{"db", "logger", newRepo})
//
// Factories are either a Factory, a func(...any) any, or any typed Go
// function returning T or (T, error):
//
//	func newRepo(db *sql.DB, log *zap.Logger) (*Repo, error)
//
// # Resolving
//
//	v, err := r.Resolve("repo")                   // one value, []any, or nil
//	all, err := r.ResolveAll("plugins")           // always a slice
//	repo, err := container.ResolveAs[*Repo](r, "repo")
//
//	// Ad-hoc factory, never registered
//	report, err := r.Invoke([]string{"db", "clock"}, newReport)
//
// # Overrides
//
// Overrides replace names for the duration of one call, at any depth:
//
//	repo, err := r.Resolve("repo", container.Overrides{"db": fakeDB})
//
// # Branching
//
// Branch creates an independent child seeded with the parent's
// registrations. Instance values carry over; cached Singletons do not.
//
//	scope := root.Branch()
//	scope.Instance("request", req)
//
// # Service Providers
//
//	registry := container.NewProviderRegistry(r)
//	registry.Register(&MailProvider{})
//	registry.Boot()
package container
