package carteira

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Fixed storage keys, carried over from the original app.
const (
	StorageKeyTransactions = "@transactions"
	StorageKeyPrivacyMode  = "@privacy_mode"
)

// KeyValueStore is the persistence boundary: a local string key-value store
// with last-write-wins semantics and no transactional guarantees.
type KeyValueStore interface {
	// Get returns the value for a key. ok is false when the key is absent,
	// which is not an error.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Clear removes every key.
	Clear() error
}

// DirStore is a KeyValueStore backed by one file per key under a directory.
type DirStore struct {
	dir string
}

// NewDirStore creates the directory if needed and returns a store over it.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

// path maps a key to a file name. Keys contain characters like '@' so they
// are escaped rather than used verbatim.
func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *DirStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return string(data), true, nil
}

func (s *DirStore) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("could not list store directory %q: %w", s.dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return fmt.Errorf("could not clear key file %q: %w", e.Name(), err)
		}
	}
	return nil
}

// MemStore is an in-memory KeyValueStore, used by tests.
type MemStore map[string]string

func (m MemStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m MemStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m MemStore) Clear() error {
	for k := range m {
		delete(m, k)
	}
	return nil
}
