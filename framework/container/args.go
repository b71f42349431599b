package container

// call is the normalized form of a registration or an ad-hoc resolution.
// Registration and resolution only ever see this struct; the flexible
// argument shapes accepted by the public API are folded into it here.
type call struct {
	names        []string
	dependencies []string
	factory      Factory
	overrides    Overrides
}

// Overrides maps dependency names to values that replace whatever the
// registry would have produced for them during a single resolution. A name
// present with a nil value still wins.
type Overrides map[string]any

// parseRegistration normalizes the arguments of Singleton, Contextual and
// Transient.
func parseRegistration(names any, rest []any) call {
	c := call{names: collectNames(nil, names)}
	for _, arg := range rest {
		c.collect(arg)
	}
	return c
}

// parseInvoke normalizes the arguments of Invoke: dependency names, one
// factory and optional overrides, in any order. The last overrides value
// wins.
func parseInvoke(args []any) call {
	var c call
	for _, arg := range args {
		switch o := arg.(type) {
		case Overrides:
			c.overrides = o
		case map[string]any:
			c.overrides = o
		default:
			c.collect(arg)
		}
	}
	return c
}

// collect folds one raw argument into the dependency list or the factory.
// The first callable found wins; values that are neither strings nor
// callables are discarded.
func (c *call) collect(arg any) {
	switch a := arg.(type) {
	case string, []string:
		c.dependencies = collectNames(c.dependencies, a)
	case []any:
		for _, item := range a {
			c.collect(item)
		}
	default:
		if c.factory != nil {
			return
		}
		if f, ok := asFactory(a); ok {
			c.factory = f
		}
	}
}

// collectNames appends the string content of v to dst. v may be a string,
// a []string or a []any; anything else contributes nothing. Empty strings
// are dropped.
func collectNames(dst []string, v any) []string {
	switch n := v.(type) {
	case string:
		if n != "" {
			dst = append(dst, n)
		}
	case []string:
		for _, s := range n {
			dst = collectNames(dst, s)
		}
	case []any:
		for _, item := range n {
			if s, ok := item.(string); ok {
				dst = collectNames(dst, s)
			}
		}
	}
	return dst
}
