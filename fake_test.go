package keyscope

import (
	"github.com/dshills/keyscope/key"
	"github.com/dshills/keyscope/logging"
)

// fakeWindow implements Window for tests and records its live
// subscription counts so lifecycle behavior is observable.
type fakeWindow struct {
	name      string
	destroyed bool

	keySubs     []func(key.Event)
	destroySubs []func()
}

func (w *fakeWindow) OnKey(fn func(key.Event)) func() {
	w.keySubs = append(w.keySubs, fn)
	i := len(w.keySubs) - 1
	return func() { w.keySubs[i] = nil }
}

func (w *fakeWindow) OnDestroy(fn func()) func() {
	w.destroySubs = append(w.destroySubs, fn)
	i := len(w.destroySubs) - 1
	return func() { w.destroySubs[i] = nil }
}

func (w *fakeWindow) Destroyed() bool { return w.destroyed }

// fire delivers a raw key event to every live subscriber, the way a
// host event loop would.
func (w *fakeWindow) fire(ev key.Event) {
	subs := make([]func(key.Event), len(w.keySubs))
	copy(subs, w.keySubs)
	for _, fn := range subs {
		if fn != nil {
			fn(ev)
		}
	}
}

func (w *fakeWindow) keySubCount() int {
	n := 0
	for _, fn := range w.keySubs {
		if fn != nil {
			n++
		}
	}
	return n
}

func (w *fakeWindow) destroySubCount() int {
	n := 0
	for _, fn := range w.destroySubs {
		if fn != nil {
			n++
		}
	}
	return n
}

// fakeHost implements Host over a mutable window list.
type fakeHost struct {
	windows     []*fakeWindow
	createdSubs []func(Window)
}

func (h *fakeHost) Windows() []Window {
	out := make([]Window, 0, len(h.windows))
	for _, w := range h.windows {
		out = append(out, w)
	}
	return out
}

func (h *fakeHost) OnWindowCreated(fn func(Window)) func() {
	h.createdSubs = append(h.createdSubs, fn)
	i := len(h.createdSubs) - 1
	return func() { h.createdSubs[i] = nil }
}

// newWindow opens a window and notifies creation subscribers.
func (h *fakeHost) newWindow(name string) *fakeWindow {
	w := &fakeWindow{name: name}
	h.windows = append(h.windows, w)
	subs := make([]func(Window), len(h.createdSubs))
	copy(subs, h.createdSubs)
	for _, fn := range subs {
		if fn != nil {
			fn(w)
		}
	}
	return w
}

// destroyWindow closes a window and fires its destroy hooks once.
func (h *fakeHost) destroyWindow(w *fakeWindow) {
	if w.destroyed {
		return
	}
	for i, other := range h.windows {
		if other == w {
			h.windows = append(h.windows[:i], h.windows[i+1:]...)
			break
		}
	}
	w.destroyed = true
	subs := make([]func(), len(w.destroySubs))
	copy(subs, w.destroySubs)
	for _, fn := range subs {
		if fn != nil {
			fn()
		}
	}
}

func (h *fakeHost) createdSubCount() int {
	n := 0
	for _, fn := range h.createdSubs {
		if fn != nil {
			n++
		}
	}
	return n
}

// newTestEngine builds an engine over a fresh fake host with logging
// silenced.
func newTestEngine() (*Engine, *fakeHost) {
	h := &fakeHost{}
	return New(h, WithLogger(logging.NullLogger)), h
}

func ctrlS() key.Event {
	return key.Event{Kind: key.KindDown, Key: "s", Code: "KeyS", Mods: key.ModCtrl, Known: key.ModAll}
}

func down(k, code string, mods key.Modifier) key.Event {
	return key.Event{Kind: key.KindDown, Key: k, Code: code, Mods: mods, Known: key.ModAll}
}
