package driven

// Locker provides cross-process advisory locking.
type Locker interface {
	// Acquire takes an exclusive lock on path without blocking. When another
	// process holds it, a *domain.LockHeldError is returned.
	// The returned release function is safe to call more than once.
	Acquire(path string) (release func() error, err error)
}
