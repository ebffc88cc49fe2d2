package mapstate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
)

// LocalStore is the degraded, file-backed map state store used for
// anonymous sessions and as a fallback when the database is unreachable.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

type localFile struct {
	States map[string]visit.MapState `json:"states"`
}

// NewLocalStore creates a store persisting to the given JSON file.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

// Load returns the state filed under key, or an empty state.
func (s *LocalStore) Load(key string) (visit.MapState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return nil, err
	}
	state := file.States[key]
	if state == nil {
		state = visit.MapState{}
	}
	return state, nil
}

// Save writes the state filed under key.
func (s *LocalStore) Save(key string, state visit.MapState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	file.States[key] = state
	return s.write(file)
}

// Clear removes the state filed under key.
func (s *LocalStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	delete(file.States, key)
	return s.write(file)
}

func (s *LocalStore) read() (*localFile, error) {
	file := &localFile{States: map[string]visit.MapState{}}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return file, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read local state file: %w", err)
	}
	if len(data) == 0 {
		return file, nil
	}

	if err := json.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to decode local state file: %w", err)
	}
	if file.States == nil {
		file.States = map[string]visit.MapState{}
	}
	return file, nil
}

func (s *LocalStore) write(file *localFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create local state directory: %w", err)
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode local state file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write local state file: %w", err)
	}
	return nil
}
