// Durable autopilot state. Nothing in memory survives a page reload, so the
// per-source running flag lives in a small JSON file and is the single
// source of truth read back on every page load. Flags are keyed by source
// name so two boards never clobber each other's session.

package session

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	mu       sync.Mutex
	filePath string
	flags    map[string]bool
}

// NewStore creates or loads the session file under dir.
func NewStore(dir string) *Store {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create session directory: %v", err)
	}
	s := &Store{
		filePath: filepath.Join(dir, "session.json"),
		flags:    make(map[string]bool),
	}
	s.load()
	return s
}

// AutoPilot reports whether the source's drive flag is set. Absent means off.
func (s *Store) AutoPilot(source string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[source]
}

// SetAutoPilot flips the source's drive flag and persists immediately; the
// flag must already be durable before the page reloads.
func (s *Store) SetAutoPilot(source string, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.flags[source] = true
	} else {
		delete(s.flags, source)
	}
	return s.save()
}

func (s *Store) load() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read session.json: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &s.flags); err != nil {
		log.Printf("⚠️ Failed to parse session.json: %v", err)
		s.flags = make(map[string]bool)
	}
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.flags, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0644)
}
