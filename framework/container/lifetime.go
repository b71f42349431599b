package container

// Lifetime controls how a registration's built value is cached.
type Lifetime int

const (
	// Transient registrations are rebuilt every time they are resolved, even
	// several times within the same resolution.
	Transient Lifetime = iota

	// Contextual registrations are built at most once per top-level
	// resolution and shared within that resolution's dependency graph. The
	// next Resolve or Invoke call builds a new value.
	Contextual

	// Singleton registrations are built on first resolution and shared by
	// every later resolution against the same Resolver.
	Singleton

	// Instance registrations hold a value supplied at registration time. It
	// is never rebuilt.
	Instance
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Contextual:
		return "contextual"
	case Singleton:
		return "singleton"
	case Instance:
		return "instance"
	default:
		return "unknown"
	}
}

// shared reports whether records with this lifetime are referenced as-is by
// every resolution instead of being copied per call.
func (l Lifetime) shared() bool {
	return l == Singleton || l == Instance
}

// caches reports whether a built value is stored on the record.
func (l Lifetime) caches() bool {
	return l == Singleton || l == Contextual
}

// MarshalText encodes the lifetime by name.
func (l Lifetime) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
