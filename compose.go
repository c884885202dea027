package pathroute

// ComposeScope holds the memoized previous output for one nesting point.
// Each nested router scope owns one and recomputes its configuration
// through it on every location update; the memo is what keeps the
// config's identity stable when nothing actually changed. It is
// single-goroutine state, like the rest of the routing pass.
type ComposeScope struct {
	prev *RouterConfig
}

// Compose derives the effective child configuration from parent plus
// local overrides.
//
// Policies:
//
//   - a location hook in overrides that differs from the parent's
//     restarts composition from the default root configuration,
//     deliberately discarding every ancestor override: a different
//     location source is an unrelated routing universe;
//   - Base always concatenates: effective parent base + override base;
//   - every other field: the override wins only when set;
//   - the returned pointer is stable across calls: the parent itself
//     when the result is value-equal to it, the previously returned
//     object while its values still hold, a fresh allocation otherwise.
func (s *ComposeScope) Compose(parent *RouterConfig, overrides RouterConfig) *RouterConfig {
	if parent == nil {
		parent = defaultRouter
	}

	effective := parent
	if overrides.Location != nil && overrides.Location != parent.Location {
		effective = defaultRouter
	}

	// Walk the field set explicitly: an override wins only when set,
	// and Base is concatenated, never replaced.
	child := *effective
	child.Base = effective.Base + overrides.Base
	if overrides.Location != nil {
		child.Location = overrides.Location
	}
	if overrides.Search != nil {
		child.Search = overrides.Search
	}
	if overrides.Parser != nil {
		child.Parser = overrides.Parser
	}
	if overrides.SSRPath != "" {
		child.SSRPath = overrides.SSRPath
	}
	if overrides.SSRSearch != "" {
		child.SSRSearch = overrides.SSRSearch
	}

	if *parent == child {
		s.prev = parent
		return parent
	}
	if s.prev != nil && *s.prev == child {
		return s.prev
	}

	out := child
	s.prev = &out
	return &out
}

// ComposeRouter is a convenience for one-off composition without a memo
// scope. Dependents that key on config identity should hold a
// ComposeScope instead.
func ComposeRouter(parent *RouterConfig, overrides RouterConfig) *RouterConfig {
	var scope ComposeScope
	return scope.Compose(parent, overrides)
}
