// Package keyscope registers window-scoped keyboard shortcuts and
// dispatches raw key events to their callbacks.
//
// An Engine is bound to a Host, the windowing system it runs against.
// Shortcuts are registered per window and per named state; passing a nil
// Window registers on every current and future window. The engine lazily
// installs one raw-key listener per window bucket on first registration
// and tears it down when the bucket empties or the window is destroyed.
//
//	eng := keyscope.New(host)
//	eng.Register(win, "normal", "CmdOrCtrl+S", save)
//	eng.Register(nil, "normal", "F2", focusNext) // every window
//	eng.EnableOnly(win, "help")
//
// Each key press invokes at most one callback per bucket: the first
// enabled entry, in state-creation then insertion order, whose descriptor
// matches the event. Key releases are ignored. Callbacks run outside the
// engine's lock and may freely re-enter any engine operation.
//
// Shortcuts here are window-local: nothing is registered with the
// operating system, and matching only happens while a host window
// actually receives key input.
package keyscope
