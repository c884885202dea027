package pathroute

// RedirectEffect performs a navigation exactly once after its scope has
// been committed by the host. The matching pass itself never navigates:
// the host attaches the effect while matching, then calls Commit after
// its render commit. Detaching before the commit cancels the navigation
// permanently; cancellation is a no-op and there is no retry.
//
// The lifecycle is single-goroutine, like the rest of the routing pass.
type RedirectEffect struct {
	location LocationHook
	to       string
	opts     []NavigateOption

	attached bool
	detached bool
	fired    bool
}

// NewRedirectEffect creates an effect that will navigate location to
// `to` once committed.
func NewRedirectEffect(location LocationHook, to string, opts ...NavigateOption) *RedirectEffect {
	return &RedirectEffect{location: location, to: to, opts: opts}
}

// Attach marks the effect's scope as active. Commit only fires for
// attached effects.
func (e *RedirectEffect) Attach() {
	if !e.detached {
		e.attached = true
	}
}

// Commit fires the navigation if the effect is attached, not detached
// and has not fired before. Subsequent commits are no-ops.
func (e *RedirectEffect) Commit() {
	if !e.attached || e.detached || e.fired {
		return
	}
	e.fired = true
	e.location.Navigate(e.to, e.opts...)
}

// Detach cancels the effect if it has not fired yet. A detached effect
// never fires again, even if re-attached.
func (e *RedirectEffect) Detach() {
	e.detached = true
}

// Fired reports whether the navigation has run.
func (e *RedirectEffect) Fired() bool {
	return e.fired
}
