// Package jsonfile persists the two application collections as whole JSON
// documents on disk: {"assessments": [...]} and {"users": [...]}.
//
// Every read re-parses the file and every mutation rewrites the full
// document, serialized by one process-wide mutex. Writes go through a temp
// file in the same directory followed by a rename, so a reader never
// observes a torn document. Concurrent updates to the same record still
// resolve last-writer-wins; that is a documented limit of the whole-document
// model, not something this package hides.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	assessmentsFile = "assessments.json"
	usersFile       = "users.json"
)

// Store owns the data directory and the lock shared by both collections.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore returns a Store rooted at dir. The directory and the two
// documents are created lazily on first access.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// ensureFile creates the data directory and seeds the named document with an
// empty collection when it does not exist yet.
func (s *Store) ensureFile(name string, empty any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	return s.writeFile(name, empty)
}

func (s *Store) load(name string, empty, out any) error {
	if err := s.ensureFile(name, empty); err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) save(name string, doc any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return s.writeFile(name, doc)
}

// writeFile replaces the document atomically: marshal, write to a temp file
// in the same directory, fsync, rename onto the visible path.
func (s *Store) writeFile(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
