package barrier

// CoopBarrier is the continuation-passing counterpart to ThreadedBarrier,
// for the single-threaded cooperative backend. Arrive never blocks a
// goroutine: it records the caller's continuation and returns immediately.
// When the Nth continuation has been recorded, the barrier runs onComplete
// and then invokes every stored continuation in insertion order, all within
// the same call stack — there is no concurrency here to race.
type CoopBarrier struct {
	expected   int
	waiters    []func()
	onComplete func()
}

// NewCoopBarrier builds a barrier for `expected` parties. onComplete may be
// nil.
func NewCoopBarrier(expected int, onComplete func()) *CoopBarrier {
	return &CoopBarrier{expected: expected, onComplete: onComplete}
}

// Arrive registers resume as the caller's continuation for this phase. It
// does not call resume itself; resume is invoked later, either synchronously
// within this same Arrive call (if this is the Nth arrival) or from a later
// Arrive call on the same barrier (the Nth party's call resumes everyone,
// including itself, by running every collected continuation in order).
func (b *CoopBarrier) Arrive(resume func()) {
	b.waiters = append(b.waiters, resume)
	if len(b.waiters) < b.expected {
		return
	}

	ready := b.waiters
	b.waiters = nil
	if b.onComplete != nil {
		b.onComplete()
	}
	for _, r := range ready {
		r()
	}
}
