package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultMode fs.FileMode = 0o644

// Store implements domain.FileStore on the local filesystem.
type Store struct{}

func New() *Store {
	return &Store{}
}

func (s *Store) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Write replaces path with data. Parent directories are created as needed and
// an existing file keeps its permission bits.
func (s *Store) Write(path string, data []byte) error {
	mode := defaultMode
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return err
	}
	// WriteFile only applies mode on create; umask may also have narrowed it.
	return os.Chmod(path, mode)
}
