package sync_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/sync"
	"github.com/stretchr/testify/require"
)

func TestFileLockAcquireRelease(t *testing.T) {
	dir := t.TempDir()
	lock := sync.NewFileLock(dir, time.Minute)

	release, err := lock.Acquire("sync_products")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "sync_products.lock"))

	release()
	require.NoFileExists(t, filepath.Join(dir, "sync_products.lock"))

	// Reacquire after release.
	release, err = lock.Acquire("sync_products")
	require.NoError(t, err)
	release()
}

func TestFileLockHeld(t *testing.T) {
	dir := t.TempDir()
	lock := sync.NewFileLock(dir, time.Minute)

	release, err := lock.Acquire("sync_products")
	require.NoError(t, err)
	defer release()

	_, err = lock.Acquire("sync_products")
	require.ErrorIs(t, err, model.ErrLockHeld)
}

func TestFileLockOperationsAreIndependent(t *testing.T) {
	dir := t.TempDir()
	lock := sync.NewFileLock(dir, time.Minute)

	releaseProducts, err := lock.Acquire("sync_products")
	require.NoError(t, err)
	defer releaseProducts()

	releaseStatus, err := lock.Acquire("sync_status")
	require.NoError(t, err)
	defer releaseStatus()
}

func TestFileLockReclaimsStaleLock(t *testing.T) {
	dir := t.TempDir()
	lock := sync.NewFileLock(dir, time.Minute)

	stale := time.Now().Add(-2 * time.Minute).Unix()
	path := filepath.Join(dir, "sync_products.lock")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("%d", stale)), 0o644))

	release, err := lock.Acquire("sync_products")
	require.NoError(t, err)
	release()
}

func TestFileLockUnreadableTimestampUsesMtime(t *testing.T) {
	dir := t.TempDir()
	lock := sync.NewFileLock(dir, time.Minute)

	// A fresh file with garbage content still counts as held via its mtime.
	path := filepath.Join(dir, "sync_products.lock")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	_, err := lock.Acquire("sync_products")
	require.ErrorIs(t, err, model.ErrLockHeld)

	// Once the mtime is pushed past the stale window the lock is reclaimed.
	old := time.Now().Add(-2 * time.Minute)
	require.NoError(t, os.Chtimes(path, old, old))

	release, err := lock.Acquire("sync_products")
	require.NoError(t, err)
	release()
}
