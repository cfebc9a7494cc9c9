package store

import (
	"errors"
	"sync"
)

var (
	ErrNotFound    = errors.New("entity not found")
	ErrDuplicateID = errors.New("entity id already exists")
	ErrEmptyID     = errors.New("entity id is empty")
)

// Store is a keyed in-memory table. Each entity type gets its own instance,
// passed into the services that need it, so tests can build isolated graphs.
// Reads return snapshots; iteration order is not fixed.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	idOf  func(T) string
}

// New creates an empty store keyed by idOf.
func New[T any](idOf func(T) string) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		idOf:  idOf,
	}
}

// Put inserts a new entity. Fails with ErrDuplicateID if the id is taken.
func (s *Store[T]) Put(v T) error {
	id := s.idOf(v)
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return ErrDuplicateID
	}
	s.items[id] = v
	return nil
}

// Get returns the entity with the given id.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// Update replaces an existing entity. Fails with ErrNotFound if absent.
func (s *Store[T]) Update(v T) error {
	id := s.idOf(v)
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	s.items[id] = v
	return nil
}

// Delete removes the entity with the given id.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// Exists reports whether an entity with the given id is present.
func (s *Store[T]) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok
}

// All returns a snapshot of every entity.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		out = append(out, v)
	}
	return out
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Filter returns the entities for which keep is true, from a snapshot.
func Filter[T any](s *Store[T], keep func(T) bool) []T {
	all := s.All()
	out := make([]T, 0, len(all))
	for _, v := range all {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountBy groups a snapshot by keyOf and counts each group.
func CountBy[T any](s *Store[T], keyOf func(T) string) map[string]int {
	out := make(map[string]int)
	for _, v := range s.All() {
		out[keyOf(v)]++
	}
	return out
}

// AverageBy groups a snapshot by keyOf and averages valueOf per group.
func AverageBy[T any](s *Store[T], keyOf func(T) string, valueOf func(T) float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, v := range s.All() {
		k := keyOf(v)
		sums[k] += valueOf(v)
		counts[k]++
	}

	out := make(map[string]float64, len(sums))
	for k, sum := range sums {
		out[k] = sum / float64(counts[k])
	}
	return out
}

// GroupBy groups a snapshot by keyOf.
func GroupBy[T any](s *Store[T], keyOf func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, v := range s.All() {
		k := keyOf(v)
		out[k] = append(out[k], v)
	}
	return out
}
