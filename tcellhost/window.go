package tcellhost

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keyscope/key"
)

// Window is one pane on the terminal screen. It satisfies
// keyscope.Window: the host delivers key events to the focused window
// and fires destroy hooks when the window closes.
type Window struct {
	id string

	mu          sync.Mutex
	title       string
	lines       []string
	destroyed   bool
	keySubs     []func(key.Event)
	destroySubs []func()
}

func newWindow(title string) *Window {
	return &Window{
		id:    uuid.New().String(),
		title: title,
	}
}

// ID returns the window's unique identifier.
func (w *Window) ID() string { return w.id }

// Title returns the window's title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetTitle changes the window's title.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

// Println appends a formatted line to the window's content.
func (w *Window) Println(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

// Clear removes all content lines.
func (w *Window) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = nil
}

// Lines returns a copy of the window's content lines.
func (w *Window) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.lines))
	copy(out, w.lines)
	return out
}

// OnKey registers a key event subscriber and returns a cancel function.
// Subscribing to a destroyed window is a no-op.
func (w *Window) OnKey(fn func(key.Event)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.destroyed {
		return func() {}
	}

	w.keySubs = append(w.keySubs, fn)
	index := len(w.keySubs) - 1

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if index < len(w.keySubs) {
			w.keySubs[index] = nil
		}
	}
}

// OnDestroy registers a destroy hook and returns a cancel function.
// Subscribing to a destroyed window is a no-op.
func (w *Window) OnDestroy(fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.destroyed {
		return func() {}
	}

	w.destroySubs = append(w.destroySubs, fn)
	index := len(w.destroySubs) - 1

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if index < len(w.destroySubs) {
			w.destroySubs[index] = nil
		}
	}
}

// Destroyed reports whether the window has been destroyed.
func (w *Window) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// deliver fans a key event out to subscribers. Subscribers are copied
// under the lock and invoked outside it so callbacks may re-enter the
// window.
func (w *Window) deliver(ev key.Event) {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	subs := make([]func(key.Event), len(w.keySubs))
	copy(subs, w.keySubs)
	w.mu.Unlock()

	for _, fn := range subs {
		if fn != nil {
			fn(ev)
		}
	}
}

// destroy marks the window destroyed and fires its destroy hooks once.
func (w *Window) destroy() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.destroyed = true
	subs := make([]func(), len(w.destroySubs))
	copy(subs, w.destroySubs)
	w.mu.Unlock()

	for _, fn := range subs {
		if fn != nil {
			fn()
		}
	}
}
