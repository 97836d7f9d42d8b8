package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryInterval = 25 * time.Millisecond

// DeviceLock is an advisory file lock keyed by device address. It keeps at
// most one request outstanding per device from this host, for controllers
// that handle a single request at a time.
type DeviceLock struct {
	path string
	lock *flock.Flock
}

// NewDeviceLock prepares the lock file for address under dir.
func NewDeviceLock(dir, address string) (*DeviceLock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	path := filepath.Join(dir, lockFileName(address))
	return &DeviceLock{path: path, lock: flock.New(path)}, nil
}

// Path returns the lock file path.
func (l *DeviceLock) Path() string { return l.path }

// Acquire blocks until the lock is held or ctx is done.
func (l *DeviceLock) Acquire(ctx context.Context) error {
	ok, err := l.lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("acquire device lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("acquire device lock %s: not acquired", l.path)
	}
	return nil
}

// Release drops the lock. The file is left in place for the next holder.
func (l *DeviceLock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release device lock %s: %w", l.path, err)
	}
	return nil
}

func lockFileName(address string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(address))
	if name == "" {
		name = "default"
	}
	return name + ".lock"
}
