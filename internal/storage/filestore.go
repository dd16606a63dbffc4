package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrFileExists is returned when a write would overwrite an existing file.
var ErrFileExists = errors.New("file already exists")

// FileStore writes uploaded files under a single base directory and
// refuses to overwrite an existing name. The existence check and the
// write are not atomic; with random UUID prefixes in every filename a
// losing race is considered negligible.
type FileStore struct {
	dir string
}

// New creates a FileStore rooted at dir, creating the directory if needed.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the base directory of the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the full path a name would be stored at.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether a file with the given name is already stored.
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Save writes data under name. It returns ErrFileExists if the name is
// already taken.
func (s *FileStore) Save(name string, data []byte) error {
	path := s.Path(name)
	if s.Exists(name) {
		return fmt.Errorf("%w: %s", ErrFileExists, name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// SaveStream streams r into a new file under name. It returns
// ErrFileExists if the name is already taken.
func (s *FileStore) SaveStream(name string, r io.Reader) error {
	path := s.Path(name)
	if s.Exists(name) {
		return fmt.Errorf("%w: %s", ErrFileExists, name)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
