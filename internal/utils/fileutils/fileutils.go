package fileutils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// AcquireLockFile creates a lock file at lockFilePath (and its parent directory)
// and takes an exclusive, non-blocking flock on it. A second process asking for
// the same path fails instead of waiting.
func AcquireLockFile(lockFilePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(lockFilePath), 0o755); err != nil {
		return nil, fmt.Errorf("error creating lockfile directory (%s) error: %w", lockFilePath, err)
	}

	lockFile, err := os.OpenFile(lockFilePath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error creating lockfile (%s) error: %w", lockFilePath, err)
	}

	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		lockFile.Close()
		return nil, fmt.Errorf("error acquiring lock on file (%s) error: %w", lockFilePath, err)
	}

	// record the owner, handy when the lock is found stale
	if err := lockFile.Truncate(0); err == nil {
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
	}
	return lockFile, nil
}

func FreeLockFile(lockFile *os.File) error {
	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_UN); err != nil {
		return fmt.Errorf("error unlocking lock file, error: %w", err)
	}

	if err := lockFile.Close(); err != nil {
		return fmt.Errorf("error closing lock file, error: %w", err)
	}

	if err := os.Remove(lockFile.Name()); err != nil {
		return fmt.Errorf("error deleting lock file, error: %w", err)
	}
	return nil
}
