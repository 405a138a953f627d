package tcellhost

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/key"
	"github.com/dshills/keyscope/logging"
)

func newSimHost(t *testing.T) *Host {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	h := NewWithScreen(sim)
	h.log = logging.NullLogger
	if err := h.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	t.Cleanup(h.Fini)
	return h
}

func ctrlSEvent() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
}

func TestCreateWindowNotifies(t *testing.T) {
	h := newSimHost(t)

	var created []keyscope.Window
	cancel := h.OnWindowCreated(func(w keyscope.Window) { created = append(created, w) })

	w1 := h.CreateWindow("one")
	if len(created) != 1 || created[0] != keyscope.Window(w1) {
		t.Fatalf("created = %v, want the new window", created)
	}

	cancel()
	h.CreateWindow("two")
	if len(created) != 1 {
		t.Errorf("subscriber ran after cancel, created = %d windows", len(created))
	}

	if n := len(h.Windows()); n != 2 {
		t.Errorf("Windows() count = %d, want 2", n)
	}
}

func TestFocusFollowsCreation(t *testing.T) {
	h := newSimHost(t)

	if h.Focused() != nil {
		t.Error("Focused() on empty host should be nil")
	}

	w1 := h.CreateWindow("one")
	if h.Focused() != w1 {
		t.Errorf("Focused() = %v, want first window", h.Focused())
	}

	w2 := h.CreateWindow("two")
	if h.Focused() != w2 {
		t.Errorf("Focused() = %v, want newest window", h.Focused())
	}

	h.FocusNext()
	if h.Focused() != w1 {
		t.Errorf("Focused() after FocusNext = %v, want first window", h.Focused())
	}
	h.FocusNext()
	if h.Focused() != w2 {
		t.Errorf("Focused() after wrap = %v, want second window", h.Focused())
	}
}

func TestHandleKeyRoutesToFocused(t *testing.T) {
	h := newSimHost(t)
	w1 := h.CreateWindow("one")
	w2 := h.CreateWindow("two")

	got := map[string]int{}
	w1.OnKey(func(key.Event) { got["one"]++ })
	w2.OnKey(func(key.Event) { got["two"]++ })

	h.handleKey(ctrlSEvent())
	if got["one"] != 0 || got["two"] != 1 {
		t.Fatalf("after first key got = %v, want only focused window", got)
	}

	h.FocusNext()
	h.handleKey(ctrlSEvent())
	if got["one"] != 1 || got["two"] != 1 {
		t.Errorf("after refocus got = %v, want one:1 two:1", got)
	}
}

func TestHandleKeyDropsUnmappedKeys(t *testing.T) {
	h := newSimHost(t)
	w := h.CreateWindow("one")

	calls := 0
	w.OnKey(func(key.Event) { calls++ })

	h.handleKey(tcell.NewEventKey(tcell.KeyHelp, 0, tcell.ModNone))
	if calls != 0 {
		t.Errorf("unmapped key delivered %d events, want 0", calls)
	}
}

func TestDestroyWindow(t *testing.T) {
	h := newSimHost(t)
	w1 := h.CreateWindow("one")
	w2 := h.CreateWindow("two")

	destroyed := 0
	w2.OnDestroy(func() { destroyed++ })

	h.DestroyWindow(w2)
	if destroyed != 1 {
		t.Fatalf("destroy hooks ran %d times, want 1", destroyed)
	}
	if !w2.Destroyed() {
		t.Error("Destroyed() = false after DestroyWindow")
	}
	if h.Focused() != w1 {
		t.Errorf("Focused() = %v, want surviving window", h.Focused())
	}

	// Destroying again is a no-op.
	h.DestroyWindow(w2)
	if destroyed != 1 {
		t.Errorf("destroy hooks ran %d times after repeat, want 1", destroyed)
	}

	h.DestroyWindow(w1)
	if h.Focused() != nil {
		t.Errorf("Focused() = %v, want nil with no windows", h.Focused())
	}
}

func TestDestroyedWindowDropsEvents(t *testing.T) {
	h := newSimHost(t)
	w := h.CreateWindow("one")

	calls := 0
	w.OnKey(func(key.Event) { calls++ })
	h.DestroyWindow(w)

	w.deliver(key.Event{Kind: key.KindDown, Key: "s", Known: key.ModAll})
	if calls != 0 {
		t.Errorf("destroyed window delivered %d events, want 0", calls)
	}

	// Subscriptions after destroy are inert.
	cancel := w.OnKey(func(key.Event) { calls++ })
	cancel()
}

func TestCancelKeySubscription(t *testing.T) {
	h := newSimHost(t)
	w := h.CreateWindow("one")

	calls := 0
	cancel := w.OnKey(func(key.Event) { calls++ })
	cancel()

	h.handleKey(ctrlSEvent())
	if calls != 0 {
		t.Errorf("canceled subscriber got %d events, want 0", calls)
	}
}

func TestEngineIntegration(t *testing.T) {
	h := newSimHost(t)
	eng := keyscope.New(h, keyscope.WithLogger(logging.NullLogger))

	calls := 0
	eng.Register(nil, "normal", "Ctrl+S", func() { calls++ })

	w := h.CreateWindow("editor")
	h.handleKey(ctrlSEvent())
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	// Per-window registration only fires on its own window.
	w2 := h.CreateWindow("other")
	perWindow := 0
	eng.Register(w2, "normal", "Ctrl+O", func() { perWindow++ })

	h.handleKey(tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModCtrl))
	if perWindow != 1 {
		t.Fatalf("per-window calls = %d, want 1", perWindow)
	}

	h.FocusNext() // back to the first window
	if h.Focused() != w {
		t.Fatalf("Focused() = %v, want first window", h.Focused())
	}
	h.handleKey(tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModCtrl))
	if perWindow != 1 {
		t.Errorf("per-window calls after refocus = %d, want 1", perWindow)
	}

	// Destroying the window cleans up its registrations.
	h.DestroyWindow(w2)
	if _, err := eng.IsRegistered(w2, "normal", "Ctrl+O"); err == nil {
		t.Error("IsRegistered after destroy returned no error")
	}
}

func TestRunPostStop(t *testing.T) {
	h := newSimHost(t)
	sim := h.Screen().(tcell.SimulationScreen)

	eng := keyscope.New(h, keyscope.WithLogger(logging.NullLogger))
	fired := make(chan struct{}, 1)
	eng.Register(nil, "normal", "Ctrl+S", func() { fired <- struct{}{} })
	h.CreateWindow("main")

	done := make(chan error, 1)
	go func() { done <- h.Run() }()

	// Work posted from another goroutine runs on the event loop.
	posted := make(chan struct{}, 1)
	if err := h.Post(func() { posted <- struct{}{} }); err != nil {
		t.Fatalf("Post error = %v", err)
	}
	select {
	case <-posted:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for posted function")
	}

	// A key injected into the screen reaches the engine.
	sim.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for shortcut dispatch")
	}

	h.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for Run to return")
	}
}
