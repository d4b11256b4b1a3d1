package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"certify/internal/model"
)

// Store persists participants as a pretty-printed JSON array on disk.
//
// There is deliberately no in-memory copy: every access re-reads the backing
// file, so edits made outside the server show up without a restart. Writes
// replace the whole file. Concurrent importer runs may race; that is an
// accepted limitation of this workload.
type Store struct {
	path string
}

// New creates a store backed by the JSON file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Load reads and parses the full participant list in append order.
func (s *Store) Load() ([]model.Participant, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read participants: %w", err)
	}
	var participants []model.Participant
	if err := json.Unmarshal(raw, &participants); err != nil {
		return nil, fmt.Errorf("parse participants: %w", err)
	}
	return participants, nil
}

// Find returns the participant with the given id, or (nil, nil) if absent.
func (s *Store) Find(id string) (*model.Participant, error) {
	participants, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range participants {
		if participants[i].ID == id {
			return &participants[i], nil
		}
	}
	return nil, nil
}

// Append adds records to the end of the stored list and writes it back in
// one shot. A missing backing file starts an empty list; a corrupt one is an
// error so a bad file is never silently clobbered.
func (s *Store) Append(records []model.Participant) error {
	participants, err := s.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		participants = nil
	}
	participants = append(participants, records...)

	out, err := json.MarshalIndent(participants, "", "  ")
	if err != nil {
		return fmt.Errorf("encode participants: %w", err)
	}
	out = append(out, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("write participants: %w", err)
	}
	return nil
}
