// Package filelock serializes writers of cleaner's own files (the platforms
// file) across processes and replaces their content atomically.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

// Locker is an exclusive lock held around a write
type Locker interface {
	Lock() error
	Unlock() error
}

// FileLock wraps a flock file lock
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a lock backed by the file at path
func NewFileLock(path string) *FileLock {
	return &FileLock{flock: flock.New(path), path: path}
}

// Lock blocks until the lock is acquired
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock acquires the lock if nobody else holds it
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

type noopLock struct{}

func (noopLock) Lock() error   { return nil }
func (noopLock) Unlock() error { return nil }

// For returns the lock guarding path: a flock on "<path>.lock" for the OS
// filesystem and a no-op for in-memory filesystems, which are process local.
func For(fsys afero.Fs, path string) Locker {
	if _, ok := fsys.(*afero.OsFs); ok {
		return NewFileLock(path + ".lock")
	}
	return noopLock{}
}

// AtomicWrite writes data to a temp file next to path and renames it into
// place, so readers never see a partial file.
func AtomicWrite(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fsys, dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := fsys.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	done = true
	return nil
}

// LockAndWrite holds the lock for path while atomically replacing it
func LockAndWrite(fsys afero.Fs, path string, data []byte) error {
	// the lock file lives next to path
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := For(fsys, path)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	return AtomicWrite(fsys, path, data)
}

// LockAndRemove holds the lock for path while removing it. A missing file is
// not an error.
func LockAndRemove(fsys afero.Fs, path string) error {
	lock := For(fsys, path)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	if err := fsys.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
