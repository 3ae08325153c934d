package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists a cart between sessions.
type Store interface {
	Load() *Cart
	Save(c *Cart) error
}

const fileName = "bookstore_cart.json"

// FileStore keeps the cart as a JSON file on disk. A missing or unreadable
// file is not an error: shoppers just start with an empty cart.
type FileStore struct {
	path string
}

// NewFileStore stores the cart at path. An empty path picks
// bookstore_cart.json under the user config directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cart path: %w", err)
		}
		path = filepath.Join(dir, fileName)
	}
	return &FileStore{path: path}, nil
}

// Load reads the persisted cart. Any failure (absent file, bad JSON,
// permissions) yields an empty cart; the aggregates are recomputed so a
// hand-edited file cannot smuggle in stale totals.
func (s *FileStore) Load() *Cart {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return New()
	}
	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return New()
	}
	c.recompute()
	return &c
}

// Save writes the cart atomically via a temp file rename.
func (s *FileStore) Save(c *Cart) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}
