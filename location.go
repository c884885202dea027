package pathroute

import "strings"

// NavigateOptions carries per-navigation flags.
type NavigateOptions struct {
	// Replace swaps the current history entry instead of pushing a
	// new one.
	Replace bool
}

// NavigateOption adjusts a navigation.
type NavigateOption func(*NavigateOptions)

// WithReplace makes the navigation replace the current history entry.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

func buildNavigateOptions(opts []NavigateOption) NavigateOptions {
	var o NavigateOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LocationHook supplies the current path and a way to navigate. Hook
// identity matters to the composer: a scope whose hook differs from its
// parent's restarts composition from the defaults.
type LocationHook interface {
	CurrentPath() string
	Navigate(to string, opts ...NavigateOption)
}

// SearchHook supplies the current search string, without the leading "?".
type SearchHook interface {
	CurrentSearch() string
}

// LocationListener observes path changes on a MemoryLocation.
type LocationListener func(path string)

// MemoryLocation is an in-memory location source. It is the default
// source for this library and the harness tests drive navigation with.
// It is single-goroutine state, read and written on the routing pass
// only, matching the cooperative execution model of the core.
type MemoryLocation struct {
	path      string
	search    string
	history   []string
	listeners []LocationListener
}

// NewMemoryLocation creates a source positioned at initial. A "?" in
// initial splits it into path and search.
func NewMemoryLocation(initial string) *MemoryLocation {
	l := &MemoryLocation{}
	path, search := splitSearch(initial)
	if path == "" {
		path = "/"
	}
	l.path = path
	l.search = search
	l.history = []string{initial}
	return l
}

func splitSearch(to string) (path, search string) {
	if i := strings.IndexByte(to, '?'); i >= 0 {
		return to[:i], to[i+1:]
	}
	return to, ""
}

// CurrentPath implements LocationHook.
func (l *MemoryLocation) CurrentPath() string { return l.path }

// CurrentSearch implements SearchHook.
func (l *MemoryLocation) CurrentSearch() string { return l.search }

// Navigate moves the location to `to`, records it in the history and
// notifies listeners.
func (l *MemoryLocation) Navigate(to string, opts ...NavigateOption) {
	o := buildNavigateOptions(opts)
	l.path, l.search = splitSearch(to)
	if l.path == "" {
		l.path = "/"
	}
	if o.Replace && len(l.history) > 0 {
		l.history[len(l.history)-1] = to
	} else {
		l.history = append(l.history, to)
	}
	for _, fn := range l.listeners {
		if fn != nil {
			fn(l.path)
		}
	}
}

// History returns the navigation history, oldest first.
func (l *MemoryLocation) History() []string { return l.history }

// Subscribe registers fn for path changes and returns an unsubscribe
// function.
func (l *MemoryLocation) Subscribe(fn LocationListener) func() {
	l.listeners = append(l.listeners, fn)
	idx := len(l.listeners) - 1
	return func() {
		l.listeners[idx] = nil
	}
}

// StaticLocation always reports the same path and search; Navigate is a
// no-op. It backs SSR-style matching where the location is fixed for the
// whole render pass.
type StaticLocation struct {
	path   string
	search string
}

// NewStaticLocation creates a fixed source. A "?" in pathAndSearch
// splits it into path and search.
func NewStaticLocation(pathAndSearch string) *StaticLocation {
	path, search := splitSearch(pathAndSearch)
	if path == "" {
		path = "/"
	}
	return &StaticLocation{path: path, search: search}
}

// CurrentPath implements LocationHook.
func (l *StaticLocation) CurrentPath() string { return l.path }

// CurrentSearch implements SearchHook.
func (l *StaticLocation) CurrentSearch() string { return l.search }

// Navigate implements LocationHook; it does nothing.
func (l *StaticLocation) Navigate(string, ...NavigateOption) {}
