package main

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/keymap"
)

// actionSet resolves keymap bindings to callbacks. Named actions map to
// built-in behaviors; script bindings run in an embedded Lua state.
//
// The Lua state is not goroutine safe. Every callback runs on the host
// event loop, and keymap reloads are posted there too, so the state is
// only ever touched from one goroutine.
type actionSet struct {
	app      *App
	L        *lua.LState
	builtins map[string]keyscope.Callback
}

func newActionSet(app *App) *actionSet {
	s := &actionSet{
		app: app,
		L:   lua.NewState(),
	}

	s.builtins = map[string]keyscope.Callback{
		"quit":         app.quit,
		"new-window":   app.newWindow,
		"close-window": app.closeWindow,
		"focus-next":   app.focusNext,
		"help-mode":    func() { app.setState(stateHelp) },
		"normal-mode":  func() { app.setState(stateNormal) },
		"clear":        app.clearWindow,
	}

	s.registerGlobals()
	return s
}

// Close releases the Lua state.
func (s *actionSet) Close() {
	s.L.Close()
}

// registerGlobals exposes the demo's API to scripts.
func (s *actionSet) registerGlobals() {
	s.L.SetGlobal("echo", s.L.NewFunction(func(L *lua.LState) int {
		s.app.echo(L.CheckString(1))
		return 0
	}))
	s.L.SetGlobal("status", s.L.NewFunction(func(L *lua.LState) int {
		s.app.host.SetStatus(L.CheckString(1))
		return 0
	}))
	s.L.SetGlobal("set_state", s.L.NewFunction(func(L *lua.LState) int {
		s.app.setState(L.CheckString(1))
		return 0
	}))
	s.L.SetGlobal("focus_next", s.L.NewFunction(func(L *lua.LState) int {
		s.app.focusNext()
		return 0
	}))
	s.L.SetGlobal("new_window", s.L.NewFunction(func(L *lua.LState) int {
		s.app.newWindow()
		return 0
	}))
	s.L.SetGlobal("quit", s.L.NewFunction(func(L *lua.LState) int {
		s.app.quit()
		return 0
	}))
}

// resolve maps a binding to its callback. Unknown actions resolve to
// nil so the binding is skipped rather than bound to a no-op.
func (s *actionSet) resolve(b keymap.Binding) keyscope.Callback {
	if b.Action != "" {
		fn, ok := s.builtins[b.Action]
		if !ok {
			s.app.log.Warn("unknown action %q", b.Action)
			return nil
		}
		return fn
	}
	if b.Script != "" {
		script := b.Script
		return func() { s.runScript(script) }
	}
	return nil
}

func (s *actionSet) runScript(src string) {
	if err := s.L.DoString(src); err != nil {
		s.app.log.Warn("script error: %v", err)
		s.app.host.SetStatus("script error (see log)")
	}
}
