// Package cache persists sector assignments between runs so companies
// already classified are not sent to the completion service again.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sectorenricher/internal/sector"
)

// Store is a JSON file mapping "NAME|TICKER" keys to sector labels.
type Store struct {
	path string
}

// NewStore creates a cache store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Key builds the cache key for a company.
func Key(name, ticker string) string {
	return name + "|" + ticker
}

// Load reads the cache file. A missing file yields an empty cache; a
// corrupt file is an error so the caller can decide to start fresh.
func (s *Store) Load() (map[string]sector.Sector, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]sector.Sector{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sector cache %s: %w", s.path, err)
	}

	raw := map[string]string{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sector cache %s: %w", s.path, err)
	}

	entries := make(map[string]sector.Sector, len(raw))
	for key, label := range raw {
		// Entries that no longer parse as a valid sector are dropped
		// rather than poisoning future runs.
		if parsed, ok := sector.Parse(label); ok {
			entries[key] = parsed
		}
	}
	return entries, nil
}

// Save writes the cache file, creating parent directories as needed.
func (s *Store) Save(entries map[string]sector.Sector) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sector cache: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sector cache %s: %w", s.path, err)
	}
	return nil
}
