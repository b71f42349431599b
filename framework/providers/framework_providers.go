package providers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/modcraft/framework/config"
	"github.com/km-arc/modcraft/framework/container"
	"github.com/km-arc/modcraft/framework/logging"
	"github.com/km-arc/modcraft/framework/routing"
)

// RegistrationsPath is where RoutingServiceProvider exposes the registry
// when the application runs in debug mode.
const RegistrationsPath = "/_modcraft/registrations"

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration and binds it.
//
// Registered names:
//   - "config", "configuration" → *config.Config (singleton)
type ConfigServiceProvider struct {
	container.BaseProvider
	Files []string
}

func (p *ConfigServiceProvider) Register(r *container.Resolver) error {
	files := p.Files
	return r.Singleton([]string{"config", "configuration"}, func() (*config.Config, error) {
		return config.Load(files...)
	})
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider binds the application logger. A preset Logger is
// registered as an instance; otherwise one is built from "config".
//
// Registered names:
//   - "logger" → *zap.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LoggingServiceProvider) Register(r *container.Resolver) error {
	if p.Logger != nil {
		return r.Instance("logger", p.Logger)
	}
	return r.Singleton("logger", "config", func(cfg *config.Config) (*zap.Logger, error) {
		return logging.New(cfg.Log)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Registered names:
//   - "router" → *routing.Router (singleton, access-logged to "logger")
//
// In debug mode Boot also mounts RegistrationsPath, which lists the
// resolver's registrations as JSON.
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(r *container.Resolver) error {
	return r.Singleton("router", "logger", routing.New)
}

func (p *RoutingServiceProvider) Boot(r *container.Resolver) error {
	cfg, err := container.ResolveAs[*config.Config](r, "config")
	if err != nil {
		return err
	}
	if !cfg.App.Debug {
		return nil
	}

	router, err := container.ResolveAs[*routing.Router](r, "router")
	if err != nil {
		return err
	}
	router.Get(RegistrationsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(r.Registrations())
	})
	return nil
}
