// Package lock provides the advisory cross-process lock that serialises
// publishes.
//
// The lock is an exclusive, non-blocking OS file lock (flock(2) on Unix,
// LockFileEx on Windows) taken on a small file that also records the
// holder's PID. The OS drops the lock if the holder dies, so a stale
// file never blocks the next publish.
//
// Limitations:
//   - Advisory only: processes that do not take the lock are not stopped.
//   - NFS and some network filesystems do not honour flock.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure FileLocker implements the interface.
var _ driven.Locker = (*FileLocker)(nil)

// errLocked is returned by tryLock when another handle holds the lock.
var errLocked = errors.New("file is locked")

// FileLocker takes exclusive OS file locks.
type FileLocker struct{}

// NewFileLocker creates a new file locker.
func NewFileLocker() *FileLocker {
	return &FileLocker{}
}

// Acquire locks path, creating it and its directory if needed.
func (l *FileLocker) Acquire(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file %s: %w", path, err)
	}

	if err := tryLock(f); err != nil {
		f.Close()
		if errors.Is(err, errLocked) {
			return nil, &domain.LockHeldError{LockPath: path, HolderPID: readHolderPID(path)}
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}

	// The PID is informational; failing to record it does not void the lock.
	if err := f.Truncate(0); err == nil {
		_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	var once sync.Once
	var releaseErr error
	release := func() error {
		once.Do(func() {
			releaseErr = unlock(f)
			if err := f.Close(); releaseErr == nil {
				releaseErr = err
			}
		})
		return releaseErr
	}
	return release, nil
}

// readHolderPID returns the PID recorded in the lock file, or 0.
func readHolderPID(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
