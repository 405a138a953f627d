package keyscope

import "github.com/dshills/keyscope/key"

// Callback is invoked when a dispatched key event matches an entry.
type Callback func()

// entry is one registered shortcut: the accelerator it came from, its
// normalized descriptor, the callback, and the enabled flag the state
// protocol toggles.
type entry struct {
	accelerator string
	desc        key.Descriptor
	fn          Callback
	enabled     bool
}

// stateGroup holds one state's entries in insertion order.
type stateGroup struct {
	name    string
	entries []*entry
}

// bucket holds every registration for one window, or for the any-window
// sentinel when window is nil, together with the listener attachments
// made on its behalf.
type bucket struct {
	window Window // nil for the any-window bucket

	// order preserves state-group creation order for dispatch.
	order  []string
	groups map[string]*stateGroup

	// keyCancels and destroyCancels track one attachment per window the
	// bucket listens on: a single window for a concrete bucket, every
	// open window for the any-window bucket.
	keyCancels     map[Window]func()
	destroyCancels map[Window]func()

	// createdCancel unsubscribes the any-window bucket from window
	// creation. Nil for concrete buckets.
	createdCancel func()
}

func newBucket(w Window) *bucket {
	return &bucket{
		window:         w,
		groups:         make(map[string]*stateGroup),
		keyCancels:     make(map[Window]func()),
		destroyCancels: make(map[Window]func()),
	}
}

// groupFor returns the named state group, creating it if needed.
func (b *bucket) groupFor(state string) *stateGroup {
	g, ok := b.groups[state]
	if !ok {
		g = &stateGroup{name: state}
		b.groups[state] = g
		b.order = append(b.order, state)
	}
	return g
}

// empty reports whether the bucket holds no entries in any state.
func (b *bucket) empty() bool {
	for _, g := range b.groups {
		if len(g.entries) > 0 {
			return false
		}
	}
	return true
}

// removeFirst removes the first entry under state whose descriptor
// matches desc, deleting the state group if it empties. It reports
// whether an entry was removed.
func (b *bucket) removeFirst(state string, desc key.Descriptor) bool {
	g := b.groups[state]
	if g == nil {
		return false
	}
	for i, en := range g.entries {
		if en.desc.Equal(desc) {
			g.entries = append(g.entries[:i], g.entries[i+1:]...)
			if len(g.entries) == 0 {
				delete(b.groups, state)
				b.dropOrder(state)
			}
			return true
		}
	}
	return false
}

func (b *bucket) dropOrder(state string) {
	for i, name := range b.order {
		if name == state {
			b.order = append(b.order[:i], b.order[i+1:]...)
			return
		}
	}
}

// firstEnabledMatch returns the first enabled entry matching desc,
// scanning state groups in creation order and entries in insertion
// order.
func (b *bucket) firstEnabledMatch(desc key.Descriptor) *entry {
	for _, name := range b.order {
		for _, en := range b.groups[name].entries {
			if en.enabled && en.desc.Equal(desc) {
				return en
			}
		}
	}
	return nil
}

// setAll sets every entry's enabled flag.
func (b *bucket) setAll(enabled bool) {
	for _, g := range b.groups {
		for _, en := range g.entries {
			en.enabled = enabled
		}
	}
}

// enableOnly enables exactly the entries whose state group matches
// state and disables every other entry.
func (b *bucket) enableOnly(state string) {
	for name, g := range b.groups {
		on := name == state
		for _, en := range g.entries {
			en.enabled = on
		}
	}
}

// takeCancels removes and returns every cancel the bucket holds.
// Callers invoke them after releasing the engine lock.
func (b *bucket) takeCancels() []func() {
	cancels := make([]func(), 0, len(b.keyCancels)+len(b.destroyCancels)+1)
	for _, c := range b.keyCancels {
		cancels = append(cancels, c)
	}
	for _, c := range b.destroyCancels {
		cancels = append(cancels, c)
	}
	if b.createdCancel != nil {
		cancels = append(cancels, b.createdCancel)
	}
	b.keyCancels = make(map[Window]func())
	b.destroyCancels = make(map[Window]func())
	b.createdCancel = nil
	return cancels
}

// takeWindowCancels removes and returns just one window's attachment
// cancels, leaving the bucket's other attachments and its creation
// subscription in place.
func (b *bucket) takeWindowCancels(w Window) []func() {
	var cancels []func()
	if c, ok := b.keyCancels[w]; ok {
		cancels = append(cancels, c)
		delete(b.keyCancels, w)
	}
	if c, ok := b.destroyCancels[w]; ok {
		cancels = append(cancels, c)
		delete(b.destroyCancels, w)
	}
	return cancels
}
