package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store reads and appends feed store files: one JSON document per feed
// topic, each a top-level array of entries. There is no index; every
// consumer loads the whole file.
type Store struct {
	feedsDir string
}

func NewStore(feedsDir string) *Store {
	return &Store{feedsDir: feedsDir}
}

// Load reads a single feed store file by name and validates its
// invariants: unique non-empty ids, non-empty categories, parseable
// dates.
func (s *Store) Load(name string) ([]Entry, error) {
	path := filepath.Join(s.feedsDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse feed file %s: %w", name, err)
	}

	if err := validateEntries(entries); err != nil {
		return nil, fmt.Errorf("invalid feed file %s: %w", name, err)
	}

	return entries, nil
}

// LoadIfExists is Load for feed files that may not exist yet.
func (s *Store) LoadIfExists(name string) ([]Entry, error) {
	entries, err := s.Load(name)
	if errors.Is(err, os.ErrNotExist) {
		return []Entry{}, nil
	}
	return entries, err
}

// LoadAll reads every *.json feed file in the feeds directory, keyed
// by file name. A missing directory yields an empty map.
func (s *Store) LoadAll() (map[string][]Entry, error) {
	feeds := make(map[string][]Entry)

	if _, err := os.Stat(s.feedsDir); os.IsNotExist(err) {
		return feeds, nil
	}

	files, err := filepath.Glob(filepath.Join(s.feedsDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find feed files: %w", err)
	}

	for _, file := range files {
		name := filepath.Base(file)
		entries, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		feeds[name] = entries
		slog.Debug("Loaded feed file", "file", file, "entries", len(entries))
	}

	return feeds, nil
}

// Append adds entries to a feed store file, creating the file when it
// does not exist yet. Existing entries are never rewritten in place;
// the combined array is validated before anything is written.
func (s *Store) Append(name string, entries ...Entry) error {
	existing, err := s.LoadIfExists(name)
	if err != nil {
		return err
	}

	combined := append(existing, entries...)
	if err := validateEntries(combined); err != nil {
		return fmt.Errorf("invalid feed file %s after append: %w", name, err)
	}

	if err := os.MkdirAll(s.feedsDir, 0755); err != nil {
		return fmt.Errorf("failed to create feeds directory: %w", err)
	}

	data, err := json.MarshalIndent(combined, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feed file %s: %w", name, err)
	}

	path := filepath.Join(s.feedsDir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write feed file %s: %w", name, err)
	}

	slog.Debug("Feed file updated", "file", path, "appended", len(entries), "total", len(combined))
	return nil
}

func validateEntries(entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		if entry.ID == "" {
			return fmt.Errorf("entry at index %d has no id", i)
		}
		if seen[entry.ID] {
			return fmt.Errorf("duplicate entry id: %s", entry.ID)
		}
		seen[entry.ID] = true

		if entry.Category == "" {
			return fmt.Errorf("entry %s has empty category", entry.ID)
		}
		if entry.PublishedAt().IsZero() {
			return fmt.Errorf("entry %s has unparseable date: %q", entry.ID, entry.Date)
		}
	}
	return nil
}
