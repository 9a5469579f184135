// Package rawstore persists JSON payloads to timestamped files so fetched
// data can be traced back to the moment it was captured.
package rawstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const timestampLayout = "20060102_150405"

// Store writes JSON dumps into a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// New creates a Store writing under dir. The directory is created on
// first save.
func New(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Save writes data as pretty-printed JSON to
// <dir>/<prefix>_<UTC timestamp>.json and returns the file path.
func (s *Store) Save(data any, prefix string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}

	ts := s.now().UTC().Format(timestampLayout)
	path := filepath.Join(s.dir, prefix+"_"+ts+".json")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
