package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations.
//
// Register is called as soon as the provider is added to a ProviderRegistry.
// Boot is called after every provider has been registered, which makes it
// safe to resolve bindings contributed by other providers.
//
//	type MailProvider struct{ container.BaseProvider }
//
//	func (p *MailProvider) Register(r *container.Resolver) error {
//	    return r.Singleton("mailer", "config", newMailer)
//	}
//
//	func (p *MailProvider) Boot(r *container.Resolver) error {
//	    _, err := r.Resolve("mailer")
//	    return err
//	}
type ServiceProvider interface {
	// Register adds the provider's registrations.
	// Do NOT resolve other bindings here; use Boot() for that.
	Register(r *Resolver) error

	// Boot is called after all providers are registered.
	Boot(r *Resolver) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(r *container.Resolver) error { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Resolver) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders
// against a single Resolver.
type ProviderRegistry struct {
	resolver   *Resolver
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to r.
func NewProviderRegistry(r *Resolver) *ProviderRegistry {
	return &ProviderRegistry{
		resolver:   r,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method. Adding the same
// provider twice is a no-op. If the registry has already booted, the
// provider is booted immediately.
func (pr *ProviderRegistry) Register(provider ServiceProvider) error {
	if pr.registered[provider] {
		return nil
	}

	if err := provider.Register(pr.resolver); err != nil {
		return fmt.Errorf("registering %T: %w", provider, err)
	}
	pr.registered[provider] = true
	pr.providers = append(pr.providers, provider)

	if pr.booted {
		if err := provider.Boot(pr.resolver); err != nil {
			return fmt.Errorf("booting %T: %w", provider, err)
		}
	}
	return nil
}

// Boot calls Boot() on every registered provider, in registration order,
// and stops at the first error. Later calls are no-ops.
func (pr *ProviderRegistry) Boot() error {
	if pr.booted {
		return nil
	}
	pr.booted = true
	for _, provider := range pr.providers {
		if err := provider.Boot(pr.resolver); err != nil {
			return fmt.Errorf("booting %T: %w", provider, err)
		}
	}
	return nil
}

// Booted returns true if Boot() has been called.
func (pr *ProviderRegistry) Booted() bool { return pr.booted }

// Providers returns all registered providers.
func (pr *ProviderRegistry) Providers() []ServiceProvider { return pr.providers }
