package keyscope

// DisableAll disables every entry in every state of the window's
// bucket. A window with no registrations is a no-op. Any-window entries
// are addressed by passing nil, never implicitly.
func (e *Engine) DisableAll(w Window) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if b := e.lookupLocked(w); b != nil {
		b.setAll(false)
	}
}

// EnableAll enables every entry in every state of the window's bucket.
func (e *Engine) EnableAll(w Window) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if b := e.lookupLocked(w); b != nil {
		b.setAll(true)
	}
}

// EnableOnly enables exactly the entries registered under state and
// disables the rest of the window's bucket. The engine stores no
// current-state variable: calling EnableAll afterwards leaves every
// state live at once, which the model permits.
func (e *Engine) EnableOnly(w Window, state string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if b := e.lookupLocked(w); b != nil {
		b.enableOnly(state)
	}
}
