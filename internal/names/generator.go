package names

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoMoreNames is returned when all available names have been used and
// wraparound is disabled.
var ErrNoMoreNames = errors.New("no more names available")

// Generator assigns names to players sequentially from a provided list.
// It is thread-safe and tracks which names have been used. A Generator
// built with NewGenerator returns ErrNoMoreNames once the pool is exhausted;
// one built with NewWrappingGenerator instead synthesizes "name-<n>" for
// every call past the end of the pool, so a configured name list never has
// to cover the full range of n_players.
type Generator struct {
	names   []string
	counter int
	wrap    bool
	mu      sync.Mutex
}

// NewGenerator creates a new name generator with the provided list of names.
// Returns an error if the names list is empty.
func NewGenerator(names []string) (*Generator, error) {
	if len(names) == 0 {
		return nil, errors.New("names list must not be empty")
	}

	return &Generator{
		names: names,
	}, nil
}

// NewWrappingGenerator is like NewGenerator except Next never errors once
// built: past the end of the pool it synthesizes "name-<n>" from the total
// call count so far.
func NewWrappingGenerator(names []string) (*Generator, error) {
	if len(names) == 0 {
		return nil, errors.New("names list must not be empty")
	}

	return &Generator{
		names: names,
		wrap:  true,
	}, nil
}

// Next returns the next available name.
// Returns ErrNoMoreNames if all names have been used and wraparound is off.
// Thread-safe: uses mutex to protect counter.
func (ng *Generator) Next() (string, error) {
	ng.mu.Lock()
	defer ng.mu.Unlock()

	if ng.counter >= len(ng.names) {
		if !ng.wrap {
			return "", ErrNoMoreNames
		}
		ng.counter++
		return fmt.Sprintf("name-%d", ng.counter), nil
	}

	name := ng.names[ng.counter]
	ng.counter++
	return name, nil
}

// Reset resets the counter to zero, allowing names to be reused.
// This is primarily intended for testing.
func (ng *Generator) Reset() {
	ng.mu.Lock()
	defer ng.mu.Unlock()
	ng.counter = 0
}

// Remaining returns the number of unused names in the base pool. Under
// wraparound this goes negative once the pool is exhausted; callers that
// only care whether the base pool itself is exhausted should compare
// against 0.
func (ng *Generator) Remaining() int {
	ng.mu.Lock()
	defer ng.mu.Unlock()
	return len(ng.names) - ng.counter
}
