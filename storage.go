package chaucha

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// ErrNotFound is returned by a Storage when a key has no record.
var ErrNotFound = errors.New("not found")

// Storage is a durable key-value medium. Each value is a whole document:
// there are no partial writes.
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// DirStorage stores each key as a "<key>.json" file in a directory.
//
// Files stay human-readable so that they can be inspected or versioned.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a DirStorage rooted at dir. The directory is created
// on the first write.
func NewDirStorage(dir string) *DirStorage { return &DirStorage{dir: dir} }

// Path returns the file name used for key.
func (s *DirStorage) Path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *DirStorage) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", s.Path(key), err)
	}
	return data, nil
}

// Set writes value to a temporary file and renames it over the previous one,
// so that a crash never leaves a half written document.
func (s *DirStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create storage folder %q: %w", s.dir, err)
	}
	f, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", s.dir, err)
	}
	tmp := f.Name()
	if _, err := f.Write(value); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot write %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace %q: %w", s.Path(key), err)
	}
	return nil
}

func (s *DirStorage) Delete(key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot delete %q: %w", s.Path(key), err)
	}
	return nil
}

// MemoryStorage is a Storage that lives as long as the process. Its zero
// value is ready to use.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (s *MemoryStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *MemoryStorage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string][]byte)
	}
	s.values[key] = slices.Clone(value)
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
