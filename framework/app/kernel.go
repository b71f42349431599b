package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/km-arc/modcraft/framework/config"
	"github.com/km-arc/modcraft/framework/container"
	"github.com/km-arc/modcraft/framework/providers"
	"github.com/km-arc/modcraft/framework/routing"
)

// ErrAlreadyStarted is returned by a second call to Start.
var ErrAlreadyStarted = errors.New("app: application already started")

// Initializer is implemented by modules that need an init phase. Every
// module's Init runs before any module's Start.
type Initializer interface {
	Init() error
}

// Starter is implemented by modules that need a start phase.
type Starter interface {
	Start() error
}

// Named is implemented by modules that want a name in lifecycle logs.
type Named interface {
	Name() string
}

// Application is one running instance of an app. It owns a branch of the
// root resolver, so registrations made on it never reach the root or other
// applications.
//
// Each application's resolver additionally answers to:
//   - "dependencies" → the application's *container.Resolver
//   - "application"  → the *Application
//   - "config", "logger", "router" → from the framework providers
type Application struct {
	id        string
	scope     *container.Resolver
	registrar *Registrar
	providers *container.ProviderRegistry
	started   bool
}

// NewRoot creates the root resolver a host registers shared items on before
// creating applications.
func NewRoot() *container.Resolver {
	return container.New()
}

// New branches root into a new Application and registers the framework
// providers on it.
func New(root *container.Resolver, opts ...Option) (*Application, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	scope := root.Branch()
	a := &Application{
		id:        uuid.NewString(),
		scope:     scope,
		registrar: &Registrar{resolver: scope},
		providers: container.NewProviderRegistry(scope),
	}

	if err := scope.Instance("dependencies", scope); err != nil {
		return nil, err
	}
	if err := scope.Instance("application", a); err != nil {
		return nil, err
	}

	// Register framework core providers first
	core := []container.ServiceProvider{
		&providers.ConfigServiceProvider{Files: o.files},
		&providers.LoggingServiceProvider{Logger: o.logger},
		&providers.RoutingServiceProvider{},
	}
	for _, p := range append(core, o.providers...) {
		if err := a.providers.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Start creates a new Application from root and starts it.
func Start(root *container.Resolver, opts ...Option) (*Application, error) {
	a, err := New(root, opts...)
	if err != nil {
		return nil, err
	}
	if err := a.Start(); err != nil {
		return nil, err
	}
	return a, nil
}

// ID returns the application's unique identifier.
func (a *Application) ID() string { return a.id }

// Register returns the application's registration surface.
func (a *Application) Register() *Registrar { return a.registrar }

// Resolver returns the application's resolver.
func (a *Application) Resolver() *container.Resolver { return a.scope }

// Providers returns the application's provider registry.
func (a *Application) Providers() *container.ProviderRegistry { return a.providers }

// Resolve resolves name from the application's resolver.
func (a *Application) Resolve(name string, overrides ...container.Overrides) (any, error) {
	return a.scope.Resolve(name, overrides...)
}

// ResolveAll resolves every registration answering to name.
func (a *Application) ResolveAll(name string, overrides ...container.Overrides) ([]any, error) {
	return a.scope.ResolveAll(name, overrides...)
}

// Invoke calls an unregistered factory against the application's resolver.
func (a *Application) Invoke(args ...any) (any, error) {
	return a.scope.Invoke(args...)
}

// ── Lifecycle ─────────────────────────────────────────────────────────────────

// Start boots the providers and builds config, logger and router, then
// resolves every module and runs Init on all of them followed by Start on all of them. Modules and services can no
// longer be registered afterwards.
func (a *Application) Start() error {
	if a.started {
		return ErrAlreadyStarted
	}
	a.started = true
	a.registrar.seal()

	if err := a.providers.Boot(); err != nil {
		return err
	}

	if _, err := container.ResolveAs[*config.Config](a.scope, "config"); err != nil {
		return fmt.Errorf("app: resolving config: %w", err)
	}
	log, err := container.ResolveAs[*zap.Logger](a.scope, "logger")
	if err != nil {
		return fmt.Errorf("app: resolving logger: %w", err)
	}
	if _, err := container.ResolveAs[*routing.Router](a.scope, "router"); err != nil {
		return fmt.Errorf("app: resolving router: %w", err)
	}
	log = log.With(zap.String("app_id", a.id))
	log.Info("starting application")

	log.Info("loading modules")
	modules, err := a.scope.ResolveAll("modules")
	if err != nil {
		return fmt.Errorf("app: loading modules: %w", err)
	}

	for _, m := range modules {
		i, ok := m.(Initializer)
		if !ok {
			continue
		}
		log.Info("initializing", zap.String("module", moduleName(m)))
		if err := i.Init(); err != nil {
			return fmt.Errorf("app: initializing %s: %w", moduleName(m), err)
		}
	}

	for _, m := range modules {
		s, ok := m.(Starter)
		if !ok {
			continue
		}
		log.Info("starting", zap.String("module", moduleName(m)))
		if err := s.Start(); err != nil {
			return fmt.Errorf("app: starting %s: %w", moduleName(m), err)
		}
	}

	log.Info("application ready", zap.Int("modules", len(modules)))
	return nil
}

func moduleName(m any) string {
	if n, ok := m.(Named); ok {
		return n.Name()
	}
	return "nameless"
}

// Started reports whether Start has been called.
func (a *Application) Started() bool { return a.started }

// Run starts the application if needed and serves the router on
// config.App.Port until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if !a.started {
		if err := a.Start(); err != nil {
			return err
		}
	}

	cfg, err := container.ResolveAs[*config.Config](a.scope, "config")
	if err != nil {
		return fmt.Errorf("app: resolving config: %w", err)
	}
	router, err := container.ResolveAs[*routing.Router](a.scope, "router")
	if err != nil {
		return fmt.Errorf("app: resolving router: %w", err)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	a.Logger().Info("serving", zap.String("name", cfg.App.Name), zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// ── Framework services ────────────────────────────────────────────────────────

// The accessors below panic when the service cannot be built. Start resolves
// each of them first, so after a successful Start they cannot fail.

// Config resolves *config.Config from the application.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.scope, "config")
}

// Router resolves *routing.Router from the application.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.scope, "router")
}

// Logger resolves the application logger, tagged with the application ID.
func (a *Application) Logger() *zap.Logger {
	return container.MustResolve[*zap.Logger](a.scope, "logger").With(zap.String("app_id", a.id))
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }

// IsLocal reports whether APP_ENV is "local".
func (a *Application) IsLocal() bool { return a.Environment() == "local" }

// IsProduction reports whether APP_ENV is "production".
func (a *Application) IsProduction() bool { return a.Environment() == "production" }

// IsTesting reports whether APP_ENV is "testing".
func (a *Application) IsTesting() bool { return a.Environment() == "testing" }

// IsDebug reports whether APP_DEBUG is enabled.
func (a *Application) IsDebug() bool { return a.Config().App.Debug }
