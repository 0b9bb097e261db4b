// Package spinlock provides a spinlock mutex for very short critical sections.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex represents a spinlock. The zero value is unlocked.
type Mutex struct {
	state atomic.Int32
}

// Lock locks the mutex busy waiting (spinlock).
func (m *Mutex) Lock() {
	for !m.TryLock() {
		runtime.Gosched()
	}
}

// TryLock locks the mutex if it is unlocked and reports whether it did.
func (m *Mutex) TryLock() bool { return m.state.CompareAndSwap(0, 1) }

// Unlock unlocks the mutex.
func (m *Mutex) Unlock() { m.state.Store(0) }
