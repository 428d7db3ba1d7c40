package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultFileMode is applied to files that did not exist before ReplaceFile.
const DefaultFileMode os.FileMode = 0o644

// ReplaceFile atomically replaces the contents of path with data.
// The data is written to a temporary file in the same directory, synced, and
// renamed over path. If path is a symlink the link target is replaced and the
// link is kept. The original permissions are preserved. On failure the
// temporary file is removed and path is left untouched.
func ReplaceFile(path string, data []byte) error {
	target := path
	perm := DefaultFileMode
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
		if info, err := os.Stat(target); err == nil {
			perm = info.Mode().Perm()
		}
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}

	if err := Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}

// Chmod sets file permissions. On Windows this is a no-op.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
