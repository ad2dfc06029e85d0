package repository

import (
	"errors"
	"sync"
)

// Sentinel errors returned by Store for malformed save input. Services map
// these onto the API validation error.
var (
	ErrNilEntity  = errors.New("entity is required")
	ErrMissingKey = errors.New("entity key is required")
)

// Store is a generic in-memory keyed collection. Save is a keyed upsert,
// Delete is logical via the deactivate hook, and iteration is stable in
// insertion order. Reads hand out deep copies so callers never share state
// with the store; mutation happens through Update under the write lock.
type Store[T any] struct {
	mu         sync.RWMutex
	items      map[string]*T
	order      []string
	key        func(*T) string
	clone      func(*T) *T
	deactivate func(*T)
}

// NewStore builds a store for one entity type. key extracts the map key,
// clone deep-copies an entity and deactivate flips its active flag.
func NewStore[T any](key func(*T) string, clone func(*T) *T, deactivate func(*T)) *Store[T] {
	return &Store[T]{
		items:      make(map[string]*T),
		key:        key,
		clone:      clone,
		deactivate: deactivate,
	}
}

// Save inserts or overwrites the entry keyed by the entity's key field.
// Re-saving under the same key is an upsert, not an error.
func (s *Store[T]) Save(entity *T) error {
	if entity == nil {
		return ErrNilEntity
	}
	k := s.key(entity)
	if k == "" {
		return ErrMissingKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[k]; !ok {
		s.order = append(s.order, k)
	}
	s.items[k] = s.clone(entity)
	return nil
}

// FindByID returns a copy of the entity, or false when no entry exists.
func (s *Store[T]) FindByID(key string) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entity, ok := s.items[key]
	if !ok {
		return nil, false
	}
	return s.clone(entity), true
}

// FindAll returns a snapshot of all entities, inactive ones included, in
// insertion order.
func (s *Store[T]) FindAll() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*T, 0, len(s.order))
	for _, k := range s.order {
		all = append(all, s.clone(s.items[k]))
	}
	return all
}

// Delete flips the entity's active flag in place. A missing key is a silent
// no-op.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entity, ok := s.items[key]; ok {
		s.deactivate(entity)
	}
}

// Update applies fn to the stored entity under the write lock and reports
// whether the key existed.
func (s *Store[T]) Update(key string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entity, ok := s.items[key]
	if !ok {
		return false
	}
	fn(entity)
	return true
}

// Search returns copies of all entities satisfying the predicate, preserving
// FindAll's iteration order.
func (s *Store[T]) Search(pred func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []*T
	for _, k := range s.order {
		if pred(s.items[k]) {
			matched = append(matched, s.clone(s.items[k]))
		}
	}
	return matched
}

// Len reports the number of stored entities, inactive ones included.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
