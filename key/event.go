package key

// Kind distinguishes key presses from key releases.
type Kind uint8

const (
	// KindDown is a key press (including auto-repeat).
	KindDown Kind = iota

	// KindUp is a key release.
	KindUp
)

// String returns the string representation of the event kind.
func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindUp:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a raw key event as delivered by a host window.
//
// Key is the logical key value ("s", "=", " ", "Enter", "F5") and Code
// the physical key code ("KeyS", "Equal", "Space", "Enter", "F5"); a
// host may leave either empty when it cannot report it. Known records
// which bits of Mods the host actually reported; flags outside Known
// are treated as undefined rather than false.
type Event struct {
	Kind  Kind
	Key   string
	Code  string
	Mods  Modifier
	Known Modifier
}

// String returns a compact representation for logs, like "down Ctrl+s".
func (e Event) String() string {
	label := e.Key
	if label == " " {
		label = "Space"
	}
	if label == "" {
		label = e.Code
	}
	if label == "" {
		label = "?"
	}
	if e.Mods.IsEmpty() {
		return e.Kind.String() + " " + label
	}
	return e.Kind.String() + " " + e.Mods.String() + "+" + label
}
