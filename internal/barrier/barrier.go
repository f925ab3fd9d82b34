// Package barrier implements the reusable N-party rendezvous both engine
// backends drive their phase transitions through: the last arriver runs a
// one-shot completion callback while every other party is still held, and
// only then is anyone released.
package barrier

import "sync"

// ThreadedBarrier is a (mutex, condvar, arrived, generation) rendezvous for
// the pre-emptive thread-per-agent backend. Arrive blocks the calling
// goroutine until the Nth party arrives; the last arriver runs onComplete
// synchronously before anyone is released.
type ThreadedBarrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	expected   int
	arrived    int
	generation uint64
	onComplete func()
}

// NewThreadedBarrier builds a barrier for `expected` parties. onComplete may
// be nil.
func NewThreadedBarrier(expected int, onComplete func()) *ThreadedBarrier {
	b := &ThreadedBarrier{expected: expected, onComplete: onComplete}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Arrive blocks until every expected party has arrived. Exactly one caller
// (the last arriver) runs onComplete, before any caller returns from Arrive.
func (b *ThreadedBarrier) Arrive() {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.arrived++
	if b.arrived == b.expected {
		if b.onComplete != nil {
			b.onComplete()
		}
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation {
		b.cond.Wait()
	}
}

// ArriveAndDrop lets a party permanently leave the barrier, decrementing the
// expected count. If that drop itself completes the phase (because every
// remaining party had already arrived), onComplete runs and everyone still
// waiting is released. Used by the moderator to unblock agents on shutdown.
func (b *ThreadedBarrier) ArriveAndDrop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expected > 0 {
		b.expected--
	}
	if b.expected > 0 && b.arrived >= b.expected {
		if b.onComplete != nil {
			b.onComplete()
		}
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()
	}
}
