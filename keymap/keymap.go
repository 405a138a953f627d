// Package keymap loads declarative shortcut maps from JSON files and
// applies them to a keyscope engine. A keymap names one or more engine
// states, each holding bindings from accelerator strings to named
// actions or inline scripts. The package does not interpret actions;
// callers supply a Resolver that turns a binding into a callback.
package keymap

import (
	"fmt"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/key"
)

// Binding maps one or more accelerators to an action.
type Binding struct {
	// Keys are the accelerator spellings that trigger the binding.
	Keys []string

	// Action names a host-defined action.
	Action string

	// Script is an inline script run instead of a named action.
	Script string

	// Description is shown in help surfaces.
	Description string
}

// StateBindings groups bindings under one engine state.
type StateBindings struct {
	State    string
	Bindings []Binding
}

// Keymap is a named set of per-state shortcut bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// States holds binding groups in declaration order.
	States []StateBindings
}

// NewKeymap creates an empty keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{Name: name}
}

// Add appends a binding under the named state, creating the state group
// if needed.
func (k *Keymap) Add(state string, b Binding) *Keymap {
	for i := range k.States {
		if k.States[i].State == state {
			k.States[i].Bindings = append(k.States[i].Bindings, b)
			return k
		}
	}
	k.States = append(k.States, StateBindings{State: state, Bindings: []Binding{b}})
	return k
}

// Validate checks that every binding names an action or script and that
// every accelerator parses.
func (k *Keymap) Validate() error {
	for _, sb := range k.States {
		if sb.State == "" {
			return fmt.Errorf("keymap %q: state with empty name", k.Name)
		}
		for i, b := range sb.Bindings {
			if len(b.Keys) == 0 {
				return fmt.Errorf("state %q binding %d: no keys", sb.State, i)
			}
			if b.Action == "" && b.Script == "" {
				return fmt.Errorf("state %q binding %d (%s): no action or script", sb.State, i, b.Keys[0])
			}
			for _, accel := range b.Keys {
				if _, err := key.FromAccelerator(accel); err != nil {
					return fmt.Errorf("state %q binding %d: %w", sb.State, i, err)
				}
			}
		}
	}
	return nil
}

// Resolver turns a binding into the callback Apply registers for it.
// Returning nil skips the binding.
type Resolver func(Binding) keyscope.Callback

// Apply registers every resolvable binding on the engine for the given
// window (nil for all windows) and returns the number of accelerators
// registered.
func (k *Keymap) Apply(eng *keyscope.Engine, w keyscope.Window, resolve Resolver) int {
	n := 0
	for _, sb := range k.States {
		for _, b := range sb.Bindings {
			fn := resolve(b)
			if fn == nil {
				continue
			}
			eng.RegisterMany(w, sb.State, b.Keys, fn)
			n += len(b.Keys)
		}
	}
	return n
}

// Revert unregisters every binding Apply would have registered. Bindings
// the resolver skipped at apply time must be skipped here too, so Revert
// takes the same resolver.
func (k *Keymap) Revert(eng *keyscope.Engine, w keyscope.Window, resolve Resolver) {
	for _, sb := range k.States {
		for _, b := range sb.Bindings {
			if resolve(b) == nil {
				continue
			}
			eng.UnregisterMany(w, sb.State, b.Keys)
		}
	}
}
