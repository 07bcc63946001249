package diamonds

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

const lockSuffix = ".lock"

// starLock serialises writers of one star directory. The lock file sits next
// to the directory so it never shows up among the sampler inputs.
type starLock struct {
	lock *flock.Flock
	path string
}

func newStarLock(starDir string) *starLock {
	path := starDir + lockSuffix
	return &starLock{lock: flock.New(path), path: path}
}

// acquire takes the lock, blocking while another process holds it.
func (l *starLock) acquire() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("diamonds: lock %s: %w", l.path, err)
	}
	if !locked {
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("diamonds: lock %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

func (l *starLock) release() error {
	if err := l.lock.Unlock(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("diamonds: unlock %s: %w", l.path, err)
	}
	return nil
}
