package keyscope

import (
	"sync"

	"github.com/dshills/keyscope/key"
	"github.com/dshills/keyscope/logging"
)

// Parser converts an accelerator string into a key descriptor. A Parser
// must be pure: no engine state may depend on when it runs.
type Parser func(accelerator string) (key.Descriptor, error)

// Engine routes window key events to registered shortcut callbacks.
//
// All methods are safe for concurrent use, though the expected caller is
// the host's single event loop. Callbacks are always invoked outside the
// engine's lock.
type Engine struct {
	host  Host
	parse Parser
	log   *logging.Logger

	mu      sync.Mutex
	windows map[Window]*bucket
	any     *bucket // nil until the first any-window registration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithParser replaces the accelerator parser. The default is
// key.FromAccelerator.
func WithParser(p Parser) Option {
	return func(e *Engine) {
		if p != nil {
			e.parse = p
		}
	}
}

// New creates a shortcut engine bound to host. It panics on a nil host;
// everything after construction degrades to logged warnings instead.
func New(host Host, opts ...Option) *Engine {
	if host == nil {
		panic("keyscope: nil host")
	}
	e := &Engine{
		host:    host,
		parse:   key.FromAccelerator,
		log:     logging.GetLogger().WithComponent("keyscope"),
		windows: make(map[Window]*bucket),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// bucketForLocked returns the bucket for w, creating it if needed.
// A nil window addresses the any-window bucket.
func (e *Engine) bucketForLocked(w Window) *bucket {
	if w == nil {
		if e.any == nil {
			e.any = newBucket(nil)
		}
		return e.any
	}
	b, ok := e.windows[w]
	if !ok {
		b = newBucket(w)
		e.windows[w] = b
	}
	return b
}

// lookupLocked returns the bucket for w without creating one.
func (e *Engine) lookupLocked(w Window) *bucket {
	if w == nil {
		return e.any
	}
	return e.windows[w]
}

// dropLocked removes the bucket for w from the registry.
func (e *Engine) dropLocked(w Window) {
	if w == nil {
		e.any = nil
		return
	}
	delete(e.windows, w)
}

func runAll(cancels []func()) {
	for _, c := range cancels {
		if c != nil {
			c()
		}
	}
}
