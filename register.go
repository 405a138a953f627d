package keyscope

// Register binds an accelerator to fn for the window under the named
// state. A nil window registers on every current and future window.
//
// A malformed accelerator is logged with the caller's stack and the
// registration still proceeds; the stored entry can never match an
// event. Registering on a destroyed window is logged and dropped. New
// entries start enabled regardless of the bucket's current state
// enablement. Duplicate registrations of the same accelerator append:
// the earlier entry shadows the later one until it is unregistered.
func (e *Engine) Register(w Window, state, accelerator string, fn Callback) {
	if fn == nil {
		e.log.Warn("register %q: nil callback%s", accelerator, callerStack(1, stackDepth))
		return
	}
	if w != nil && w.Destroyed() {
		e.log.Warn("register %q: window already destroyed", accelerator)
		return
	}

	desc, err := e.parse(accelerator)
	if err != nil {
		e.log.Warn("register: invalid accelerator %q: %v%s", accelerator, err, callerStack(1, stackDepth))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.bucketForLocked(w)
	install := b.empty()
	g := b.groupFor(state)
	g.entries = append(g.entries, &entry{
		accelerator: accelerator,
		desc:        desc,
		fn:          fn,
		enabled:     true,
	})
	if install {
		e.installLocked(b)
	}
}

// RegisterMany registers each accelerator individually under the same
// state and callback.
func (e *Engine) RegisterMany(w Window, state string, accelerators []string, fn Callback) {
	for _, a := range accelerators {
		e.Register(w, state, a, fn)
	}
}

// Unregister removes the first entry under the window's state whose
// descriptor matches the accelerator. Unregistering something that was
// never registered is a no-op; unregistering from a destroyed window is
// logged and dropped. Removing a bucket's last entry tears its
// listeners down.
func (e *Engine) Unregister(w Window, state, accelerator string) {
	if w != nil && w.Destroyed() {
		e.log.Warn("unregister %q: window already destroyed", accelerator)
		return
	}

	desc, err := e.parse(accelerator)
	if err != nil {
		e.log.Warn("unregister: invalid accelerator %q: %v%s", accelerator, err, callerStack(1, stackDepth))
	}

	var cancels []func()
	e.mu.Lock()
	if b := e.lookupLocked(w); b != nil {
		if b.removeFirst(state, desc) && b.empty() {
			cancels = b.takeCancels()
			e.dropLocked(w)
		}
	}
	e.mu.Unlock()
	runAll(cancels)
}

// UnregisterMany unregisters each accelerator individually.
func (e *Engine) UnregisterMany(w Window, state string, accelerators []string) {
	for _, a := range accelerators {
		e.Unregister(w, state, a)
	}
}

// IsRegistered reports whether an entry matching the accelerator exists
// under the window's state. It returns ErrWindowNotRegistered when the
// window has no registrations at all and ErrStateNotRegistered when it
// has none under the state; both indicate the caller queried before
// registering.
func (e *Engine) IsRegistered(w Window, state, accelerator string) (bool, error) {
	desc, err := e.parse(accelerator)
	if err != nil {
		e.log.Warn("isregistered: invalid accelerator %q: %v%s", accelerator, err, callerStack(1, stackDepth))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.lookupLocked(w)
	if b == nil {
		return false, ErrWindowNotRegistered
	}
	g := b.groups[state]
	if g == nil {
		return false, ErrStateNotRegistered
	}
	for _, en := range g.entries {
		if en.desc.Equal(desc) {
			return true, nil
		}
	}
	return false, nil
}

// UnregisterAll removes every state group and entry for the window's
// bucket and detaches its listeners. Passing nil tears down the
// any-window bucket, including its window-creation subscription.
func (e *Engine) UnregisterAll(w Window) {
	var cancels []func()
	e.mu.Lock()
	if b := e.lookupLocked(w); b != nil {
		cancels = b.takeCancels()
		e.dropLocked(w)
	}
	e.mu.Unlock()
	runAll(cancels)
}
