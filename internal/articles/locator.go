package articles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	aerrors "git.home.luguber.info/inful/orgsite/internal/articles/errors"
)

// DefaultExtension is the document extension used when none is configured.
const DefaultExtension = ".html"

// Locate returns every regular file matching root/*/*ext in lexical order
// (category first, then file name). Files directly under root and anything
// deeper than a category directory are ignored. It fails without a partial
// listing when root is missing, not a directory or cannot be listed.
func Locate(root, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", aerrors.ErrSourceRootMissing, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %w", aerrors.ErrSourceRootUnreadable, root, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s", aerrors.ErrSourceRootNotDir, root)
	}

	categories, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", aerrors.ErrSourceRootUnreadable, root, err)
	}

	paths := make([]string, 0)
	for _, category := range categories {
		dir := filepath.Join(root, category.Name())
		if !isDir(dir, category) {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", aerrors.ErrSourceRootUnreadable, dir, err)
		}
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ext) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if isRegular(path, entry) {
				paths = append(paths, path)
			}
		}
	}
	return paths, nil
}

// isDir reports whether the entry is a directory, following symlinks.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isRegular reports whether the entry is a regular file, following symlinks.
func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
