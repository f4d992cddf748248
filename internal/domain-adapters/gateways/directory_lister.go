package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DirectoryLister provides filesystem primitives for directory sources
type DirectoryLister struct{}

// NewDirectoryLister creates a new directory lister
func NewDirectoryLister() *DirectoryLister {
	return &DirectoryLister{}
}

// IsDirectory reports whether path exists and is a directory (symlinks followed)
func (l *DirectoryLister) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Canonicalize returns the absolute, symlink-free form of path
func (l *DirectoryLister) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks: %w", err)
	}

	return filepath.Clean(resolved), nil
}

// ListRegularFiles returns the sorted names of regular files directly inside dir.
// Symlinks count when their target is a regular file.
func (l *DirectoryLister) ListRegularFiles(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
			continue
		}

		if entry.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(dir, entry.Name()))
			if err == nil && info.Mode().IsRegular() {
				files = append(files, entry.Name())
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
