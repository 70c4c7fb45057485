// Package backup is a small key-value file the cart mirrors itself into, the
// way a browser tab would use local storage. Values are raw JSON, one file per
// process, overwritten in full on every write.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// CartKey is the fixed key the cart snapshot lives under.
const CartKey = "foodexpress_cart"

var ErrCorrupt = errors.New("backup corrupt")

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set marshals value and overwrites the entry under key.
func (s *Store) Set(key string, value any) error {
	entries, err := s.read()
	if err != nil {
		// A corrupt file is replaced wholesale on the next write.
		entries = map[string]json.RawMessage{}
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("backup: marshal %q: %w", key, err)
	}
	entries[key] = data

	out, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("backup: marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("backup: write %s: %w", s.path, err)
	}
	return nil
}

// Get unmarshals the entry under key into out. It reports false when the file
// or the key does not exist, and ErrCorrupt when the stored bytes cannot be
// decoded.
func (s *Store) Get(key string, out any) (bool, error) {
	entries, err := s.read()
	if err != nil {
		return false, err
	}
	raw, ok := entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("backup: read %s: %w", s.path, err)
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if entries == nil {
		entries = map[string]json.RawMessage{}
	}
	return entries, nil
}
