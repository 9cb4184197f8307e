package contestdomain

import "sync/atomic"

// Gate is the shared contest-open flag. Every mutating operation consults it
// before touching the store. One instance is created during app wiring and
// injected into the handlers and services that need it.
type Gate struct {
	closed atomic.Bool
}

func NewGate() *Gate {
	return &Gate{}
}

// Closed reports whether the contest has ended.
func (g *Gate) Closed() bool {
	return g.closed.Load()
}

// Close latches the gate shut. It returns true only for the call that
// performed the transition, so the end-of-contest work runs exactly once.
func (g *Gate) Close() bool {
	return g.closed.CompareAndSwap(false, true)
}

// Reopen clears the latch. Used when an admin pushes a new future end time
// after a prior close; the clock re-arms against the new value.
func (g *Gate) Reopen() {
	g.closed.Store(false)
}
