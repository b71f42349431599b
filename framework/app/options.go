package app

import (
	"go.uber.org/zap"

	"github.com/km-arc/modcraft/framework/container"
)

type options struct {
	files     []string
	logger    *zap.Logger
	providers []container.ServiceProvider
}

// Option configures an Application.
type Option func(*options)

// WithConfigFiles sets the .env and YAML files config is loaded from.
func WithConfigFiles(files ...string) Option {
	return func(o *options) { o.files = files }
}

// WithLogger uses log instead of building one from config.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithProviders registers additional providers after the framework ones.
func WithProviders(p ...container.ServiceProvider) Option {
	return func(o *options) { o.providers = append(o.providers, p...) }
}
