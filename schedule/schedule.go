// Package schedule persists the attendee's personal state: the bookmarked
// session ids and the availability preferences. Both round-trip through
// small JSON documents in the data directory.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	scheduleFile     = "schedule.json"
	availabilityFile = "availability.json"
)

// Store reads and writes personal state under a single directory.
type Store struct {
	Dir string
}

// NewStore creates a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Schedule returns the bookmarked session ids in bookmark order. A missing
// file means an empty schedule.
func (s *Store) Schedule() ([]string, error) {
	var ids []string
	if err := s.readJSON(scheduleFile, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveSchedule overwrites the bookmarked id list.
func (s *Store) SaveSchedule(ids []string) error {
	return s.writeJSON(scheduleFile, ids)
}

// Add bookmarks a session id. Adding an already-bookmarked id is a no-op.
func (s *Store) Add(id string) error {
	ids, err := s.Schedule()
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.SaveSchedule(append(ids, id))
}

// Remove drops a session id from the schedule. Removing an absent id is a
// no-op.
func (s *Store) Remove(id string) error {
	ids, err := s.Schedule()
	if err != nil {
		return err
	}
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	if len(out) == len(ids) {
		return nil
	}
	return s.SaveSchedule(out)
}

// Toggle adds the id if absent and removes it if present. It reports whether
// the id is bookmarked afterwards.
func (s *Store) Toggle(id string) (bool, error) {
	ids, err := s.Schedule()
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return false, s.Remove(id)
		}
	}
	return true, s.SaveSchedule(append(ids, id))
}

// Contains reports whether a session id is bookmarked.
func (s *Store) Contains(id string) (bool, error) {
	ids, err := s.Schedule()
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

// ClearSchedule removes every bookmark.
func (s *Store) ClearSchedule() error {
	return s.SaveSchedule([]string{})
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
