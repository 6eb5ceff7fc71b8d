// Package runlock keeps two mutating runs from working on the same tree at
// once. The lock is advisory and lives in the configured state directory.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"docreorg/internal/faults"
)

// Lock is a held run lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the lock at path without blocking. A lock held by another
// process yields an error marked faults.ErrLocked.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, faults.Wrap(faults.ErrIO, "runlock", "ensure lock dir", filepath.Dir(path), err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "runlock", "acquire lock", path, err)
	}
	if !ok {
		return nil, faults.Wrap(
			faults.ErrLocked,
			"runlock",
			"acquire lock",
			fmt.Sprintf("another docreorg run holds %s", path),
			nil,
		)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks the lock. Calling Release more than once is safe.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
