package keyscope

import "github.com/dshills/keyscope/key"

// Window is the engine's view of one host window. The engine tracks
// windows by identity, so implementations must be comparable (a pointer
// type satisfies this).
type Window interface {
	// OnKey subscribes fn to the window's raw key events.
	// The returned function cancels the subscription.
	OnKey(fn func(key.Event)) (cancel func())

	// OnDestroy subscribes fn to the window's destruction. The hook
	// fires at most once. The returned function cancels the
	// subscription; canceling after the hook has fired is a no-op.
	OnDestroy(fn func()) (cancel func())

	// Destroyed reports whether the window has been destroyed.
	Destroyed() bool
}

// Host exposes the windowing system the engine runs against.
//
// Hosts must not hold internal locks while invoking subscribed
// callbacks, so that a callback may call back into the host.
type Host interface {
	// Windows returns every currently open window.
	Windows() []Window

	// OnWindowCreated subscribes fn to window creation. The returned
	// function cancels the subscription.
	OnWindowCreated(fn func(Window)) (cancel func())
}
