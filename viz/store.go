package viz

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tolmaren/gridsearch/grid"
)

// ErrMazeNotFound indicates an unknown maze id.
var ErrMazeNotFound = errors.New("viz: maze not found")

// Store is an in-memory registry of built environments. Environments are
// immutable after grid.New, so Get returns the shared pointer.
type Store struct {
	mu    sync.RWMutex
	mazes map[uuid.UUID]*grid.Environment
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{mazes: make(map[uuid.UUID]*grid.Environment)}
}

// Put registers env under a fresh id.
func (s *Store) Put(env *grid.Environment) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.mazes[id] = env
	s.mu.Unlock()
	return id
}

// Get looks up a registered environment.
func (s *Store) Get(id uuid.UUID) (*grid.Environment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	env, ok := s.mazes[id]
	if !ok {
		return nil, ErrMazeNotFound
	}
	return env, nil
}

// Len reports how many mazes are registered.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mazes)
}
