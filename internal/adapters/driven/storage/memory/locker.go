package memory

import (
	"sync"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure Locker implements the interface.
var _ driven.Locker = (*Locker)(nil)

// Locker is an in-process implementation of driven.Locker.
type Locker struct {
	mu   sync.Mutex
	held map[string]bool
	// acquired counts successful acquisitions, for tests.
	acquired int
}

// NewLocker creates a new in-memory locker.
func NewLocker() *Locker {
	return &Locker{held: make(map[string]bool)}
}

// Acquire takes the lock at path or reports it as held.
func (l *Locker) Acquire(path string) (func() error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[path] {
		return nil, &domain.LockHeldError{LockPath: path}
	}
	l.held[path] = true
	l.acquired++

	var once sync.Once
	return func() error {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.held, path)
		})
		return nil
	}, nil
}

// IsHeld reports whether path is currently locked.
func (l *Locker) IsHeld(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[path]
}

// Acquired returns how many times a lock was granted.
func (l *Locker) Acquired() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquired
}
