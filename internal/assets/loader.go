// Package assets handles resource loading and the descriptor cache
// for model and blockstate documents.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound reports a resource path that no loader could supply.
var ErrNotFound = errors.New("resource not found")

// Loader supplies raw resource bytes by path. Paths use forward
// slashes relative to the resource root, e.g. "models/stone.json".
type Loader interface {
	Load(path string) ([]byte, error)
}

// DirLoader loads resources from a directory tree on disk.
type DirLoader struct {
	Root string
}

// NewDirLoader creates a loader rooted at dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{Root: dir}
}

// Load reads a resource file, mapping missing files to ErrNotFound.
func (l *DirLoader) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.Root, filepath.FromSlash(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// MapLoader serves resources from an in-memory map. Used in tests and
// for embedded resource sets.
type MapLoader map[string][]byte

// Load returns the mapped bytes, or ErrNotFound.
func (l MapLoader) Load(path string) ([]byte, error) {
	data, ok := l[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return data, nil
}
