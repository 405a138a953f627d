// Package tcellhost is a terminal window host for keyscope built on
// tcell. It multiplexes the terminal into panes, each one a
// keyscope.Window, and routes key presses to the focused pane. The
// event loop owns the screen; other goroutines hand it work with Post.
package tcellhost

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/logging"
)

// Host multiplexes a tcell screen into focusable windows. It satisfies
// keyscope.Host.
type Host struct {
	screen tcell.Screen
	log    *logging.Logger

	mu          sync.Mutex
	windows     []*Window
	focus       int
	status      string
	createdSubs []func(keyscope.Window)
}

// New creates a host on the default terminal screen.
func New() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a host on the given screen. Tests use this with
// tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Host {
	return &Host{
		screen: screen,
		log:    logging.GetLogger().WithComponent("tcellhost"),
	}
}

// Init initializes the screen.
func (h *Host) Init() error {
	return h.screen.Init()
}

// Fini restores the terminal.
func (h *Host) Fini() {
	h.screen.Fini()
}

// Screen returns the underlying tcell screen.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// CreateWindow opens a window and notifies creation subscribers.
func (h *Host) CreateWindow(title string) *Window {
	w := newWindow(title)

	h.mu.Lock()
	h.windows = append(h.windows, w)
	h.focus = len(h.windows) - 1
	subs := make([]func(keyscope.Window), len(h.createdSubs))
	copy(subs, h.createdSubs)
	h.mu.Unlock()

	// Subscribers run outside the host lock; they commonly re-enter the
	// host to enumerate windows.
	for _, fn := range subs {
		if fn != nil {
			fn(w)
		}
	}

	h.log.Debug("window %q created (%s)", title, w.id)
	h.redraw()
	return w
}

// DestroyWindow closes a window, firing its destroy hooks. Destroying a
// window that is already gone is a no-op.
func (h *Host) DestroyWindow(w *Window) {
	h.mu.Lock()
	for i, other := range h.windows {
		if other == w {
			h.windows = append(h.windows[:i], h.windows[i+1:]...)
			if h.focus >= len(h.windows) {
				h.focus = len(h.windows) - 1
			}
			break
		}
	}
	h.mu.Unlock()

	w.destroy()
	h.log.Debug("window %q destroyed (%s)", w.Title(), w.id)
	h.redraw()
}

// Windows returns the open windows in creation order.
func (h *Host) Windows() []keyscope.Window {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]keyscope.Window, 0, len(h.windows))
	for _, w := range h.windows {
		out = append(out, w)
	}
	return out
}

// OnWindowCreated registers a subscriber for window creation and
// returns a cancel function.
func (h *Host) OnWindowCreated(fn func(keyscope.Window)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.createdSubs = append(h.createdSubs, fn)
	index := len(h.createdSubs) - 1

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if index < len(h.createdSubs) {
			h.createdSubs[index] = nil
		}
	}
}

// Focused returns the focused window, or nil when no windows are open.
func (h *Host) Focused() *Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.focus < 0 || h.focus >= len(h.windows) {
		return nil
	}
	return h.windows[h.focus]
}

// FocusNext moves focus to the next window in creation order, wrapping
// at the end.
func (h *Host) FocusNext() {
	h.mu.Lock()
	if len(h.windows) > 0 {
		h.focus = (h.focus + 1) % len(h.windows)
	}
	h.mu.Unlock()
	h.redraw()
}

// SetStatus sets the text shown in the status line.
func (h *Host) SetStatus(text string) {
	h.mu.Lock()
	h.status = text
	h.mu.Unlock()
	h.redraw()
}

// Post schedules fn to run on the event loop goroutine. It fails when
// the event queue is full.
func (h *Host) Post(fn func()) error {
	return h.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// Stop makes Run return. It blocks until the stop request is queued and
// may be called from any goroutine.
func (h *Host) Stop() {
	h.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

// Run polls screen events until Stop is called or the screen is
// finalized. Key presses go to the focused window; functions handed to
// Post run between events.
func (h *Host) Run() error {
	h.redraw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			h.handleKey(tev)
			h.redraw()

		case *tcell.EventResize:
			h.screen.Sync()
			h.redraw()

		case *tcell.EventInterrupt:
			fn, ok := tev.Data().(func())
			if !ok || fn == nil {
				return nil
			}
			fn()
			h.redraw()
		}
	}
}

// handleKey converts and routes one key press to the focused window.
func (h *Host) handleKey(tev *tcell.EventKey) {
	ev := eventFromTcell(tev)
	if ev.Key == "" && ev.Code == "" {
		return
	}
	if w := h.Focused(); w != nil {
		w.deliver(ev)
	}
}

var (
	_ keyscope.Host   = (*Host)(nil)
	_ keyscope.Window = (*Window)(nil)
)
