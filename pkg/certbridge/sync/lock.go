package sync

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/sirupsen/logrus"
)

// DefaultStaleAfter is how old a lock file may become before it is treated as
// abandoned by a crashed run and silently reclaimed.
const DefaultStaleAfter = 30 * time.Minute

// FileLock is an advisory lock shared by every process that may run a sync:
// the scheduler offers no single-process exclusivity across hosts, so a
// timestamped lock file is the sole mutual-exclusion mechanism.
type FileLock struct {
	dir        string
	staleAfter time.Duration
}

func NewFileLock(dir string, staleAfter time.Duration) *FileLock {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &FileLock{dir: dir, staleAfter: staleAfter}
}

// Acquire takes the lock for one operation type. A fresh lock file makes the
// attempt fail immediately with model.ErrLockHeld and zero work done; a stale
// one is reclaimed. The returned release function removes the lock file.
func (l *FileLock) Acquire(operation string) (func(), error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return nil, fmt.Errorf("FileLock::Acquire(): fail to create lock dir: %w", err)
	}

	path := l.path(operation)
	now := time.Now()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if os.IsExist(err) {
		lockedAt, readErr := l.readTimestamp(path)
		if readErr == nil && now.Sub(lockedAt) < l.staleAfter {
			return nil, model.ErrLockHeld
		}

		// Abandoned by a crashed run; reclaim instead of blocking forever.
		logrus.Warnf("reclaiming stale %s lock from %v", operation, lockedAt)
		file, err = os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	}
	if err != nil {
		return nil, fmt.Errorf("FileLock::Acquire(): fail to create lock file: %w", err)
	}

	if _, err := fmt.Fprintf(file, "%d", now.Unix()); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("FileLock::Acquire(): fail to write lock file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("FileLock::Acquire(): fail to close lock file: %w", err)
	}

	release := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("fail to release %s lock: %v", operation, err)
		}
	}
	return release, nil
}

func (l *FileLock) readTimestamp(path string) (time.Time, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, err
	}

	seconds, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil {
		// Unreadable content; fall back to the file's own mtime.
		info, statErr := os.Stat(path)
		if statErr != nil {
			return time.Time{}, statErr
		}
		return info.ModTime(), nil
	}
	return time.Unix(seconds, 0), nil
}

func (l *FileLock) path(operation string) string {
	return filepath.Join(l.dir, operation+".lock")
}
