package keyscope

import "github.com/dshills/keyscope/key"

// dispatch routes one raw key event through a bucket. Key releases are
// ignored. The scan runs under the engine lock and completes before any
// user code runs; the matched callback is invoked outside of the lock so
// it may re-enter the engine without corrupting the scan it came from.
func (e *Engine) dispatch(b *bucket, ev key.Event) {
	if ev.Kind != key.KindDown {
		return
	}
	desc := key.FromEvent(ev)

	var fn Callback
	e.mu.Lock()
	if en := b.firstEnabledMatch(desc); en != nil {
		fn = en.fn
		e.log.Debug("dispatch %s -> %q", ev.String(), en.accelerator)
	}
	e.mu.Unlock()

	if fn != nil {
		fn()
	}
}
