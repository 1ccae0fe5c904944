package site

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes data to path atomically: parent directories are created,
// the bytes go to a temporary file in the same directory which is then
// renamed over path. Errors wrap ErrCreateDir or ErrWrite. No temporary file
// is left behind on failure.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return nil
}
