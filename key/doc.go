// Package key provides the canonical key descriptor shape and the
// accelerator grammar for the shortcut engine.
//
// This package defines the fundamental types for comparing keyboard input:
//
//   - Modifier: a bitmask of modifier keys (Ctrl, Alt, Shift, Meta)
//   - Descriptor: the canonical, comparable form of a key combination
//   - Event: a raw key event as a host delivers it
//
// # Accelerators
//
// Accelerator strings name a key combination in modifier+key form:
//
//   - Simple keys: "a", "5", "=", "Enter", "Escape", "F5"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Platform primary: "CmdOrCtrl+S" (Cmd on macOS, Ctrl elsewhere)
//
// FromAccelerator produces a Descriptor with every modifier flag defined.
// FromEvent produces a Descriptor carrying only the modifier flags the
// host actually reported; Descriptor.Equal compares modifier flags only
// where both sides define them, so hosts that omit a modifier remain
// matchable.
package key
