package key

import "strings"

// Descriptor is the canonical, comparable form of a key combination.
//
// Descriptors come from two normalization paths: FromAccelerator, which
// defines all four modifier flags, and FromEvent, which carries only the
// flags the host reported. Known records which flags are defined; Equal
// compares the two paths' output without penalizing the event side for
// omitted flags.
type Descriptor struct {
	Key   string
	Code  string
	Mods  Modifier
	Known Modifier
}

// FromEvent normalizes a raw key event into a Descriptor. Key and Code
// are copied verbatim; modifier flags outside the event's Known set are
// dropped rather than defaulted.
func FromEvent(e Event) Descriptor {
	return Descriptor{
		Key:   e.Key,
		Code:  e.Code,
		Mods:  e.Mods & e.Known,
		Known: e.Known,
	}
}

// Equal reports whether two descriptors name the same key combination.
//
// Modifier flags are compared only over the set both sides define. The
// logical key compares case-insensitively and the physical code exactly,
// each only when both sides carry it; at least one of the two dimensions
// must be comparable or the descriptors do not match. Equal is symmetric.
func (d Descriptor) Equal(o Descriptor) bool {
	shared := d.Known & o.Known
	if d.Mods&shared != o.Mods&shared {
		return false
	}

	keyComparable := d.Key != "" && o.Key != ""
	codeComparable := d.Code != "" && o.Code != ""
	if !keyComparable && !codeComparable {
		return false
	}
	if keyComparable && !strings.EqualFold(d.Key, o.Key) {
		return false
	}
	if codeComparable && d.Code != o.Code {
		return false
	}
	return true
}

// Matches reports whether a raw key event normalizes to this descriptor.
func (d Descriptor) Matches(e Event) bool {
	return d.Equal(FromEvent(e))
}

// IsZero reports whether the descriptor carries no key information.
// The zero descriptor never matches anything, including itself.
func (d Descriptor) IsZero() bool {
	return d.Key == "" && d.Code == "" && d.Mods == ModNone && d.Known == ModNone
}

// String returns a human-readable representation like "Ctrl+Shift+s".
func (d Descriptor) String() string {
	label := d.Key
	if label == " " {
		label = "Space"
	}
	if label == "" {
		label = d.Code
	}
	if label == "" {
		label = "?"
	}
	if d.Mods.IsEmpty() {
		return label
	}
	return d.Mods.String() + "+" + label
}
