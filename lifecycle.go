package keyscope

import "github.com/dshills/keyscope/key"

// installLocked wires a bucket's listeners after its first entry is
// added. A concrete bucket attaches to its own window; the any-window
// bucket attaches to every open window and subscribes to creation so
// future windows attach too.
func (e *Engine) installLocked(b *bucket) {
	if b.window != nil {
		e.attachLocked(b, b.window)
		return
	}
	for _, w := range e.host.Windows() {
		if w == nil || w.Destroyed() {
			continue
		}
		e.attachLocked(b, w)
	}
	b.createdCancel = e.host.OnWindowCreated(e.windowCreated)
}

// attachLocked subscribes the bucket's dispatcher and destroy hook on
// one window.
func (e *Engine) attachLocked(b *bucket, w Window) {
	if _, ok := b.keyCancels[w]; ok {
		return
	}
	b.keyCancels[w] = w.OnKey(func(ev key.Event) { e.dispatch(b, ev) })
	if b.window == nil {
		b.destroyCancels[w] = w.OnDestroy(func() { e.detachWindow(b, w) })
	} else {
		b.destroyCancels[w] = w.OnDestroy(func() { e.destroyBucket(b, w) })
	}
}

// windowCreated extends the any-window bucket onto a newly created
// window.
func (e *Engine) windowCreated(w Window) {
	if w == nil || w.Destroyed() {
		return
	}
	e.mu.Lock()
	if b := e.any; b != nil {
		e.attachLocked(b, w)
		e.log.Debug("any-window listener attached to new window")
	}
	e.mu.Unlock()
}

// destroyBucket is the destroyed hook for a concrete window's bucket:
// the whole bucket is torn down and dropped from the registry.
func (e *Engine) destroyBucket(b *bucket, w Window) {
	var cancels []func()
	e.mu.Lock()
	if e.windows[w] == b {
		cancels = b.takeCancels()
		e.dropLocked(w)
		e.log.Debug("window destroyed, bucket removed")
	}
	e.mu.Unlock()
	runAll(cancels)
}

// detachWindow is the destroyed hook for one window's attachment to the
// any-window bucket: only that window's listeners are released. The
// bucket itself and its creation subscription stay until it empties.
func (e *Engine) detachWindow(b *bucket, w Window) {
	var cancels []func()
	e.mu.Lock()
	if e.any == b {
		cancels = b.takeWindowCancels(w)
	}
	e.mu.Unlock()
	runAll(cancels)
}
