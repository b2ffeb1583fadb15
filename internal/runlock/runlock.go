package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFilename is the lock file created in the working directory.
const LockFilename = ".submatch.lock"

// Lock holds an acquired directory lock.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the directory lock without blocking. A held lock means
// another submatch invocation is applying changes in dir.
func Acquire(dir string) (*Lock, error) {
	fl := flock.New(filepath.Join(dir, LockFilename))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("directory %s is locked by another submatch run", dir)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
