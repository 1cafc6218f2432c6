package store

import (
	"context"
	"slices"
	"sync"
)

// collection is one owner's records. Its lock is independent of other owners.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// MemoryStore keeps records in process memory for the process lifetime.
type MemoryStore[T any] struct {
	mu          sync.RWMutex
	collections map[string]*collection[T]
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{collections: make(map[string]*collection[T])}
}

func (s *MemoryStore[T]) lookup(owner string) *collection[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collections[owner]
}

func (s *MemoryStore[T]) collection(owner string) *collection[T] {
	if c := s.lookup(owner); c != nil {
		return c
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[owner]
	if !ok {
		c = &collection[T]{items: make(map[string]T)}
		s.collections[owner] = c
	}
	return c
}

// Get implements Store.
func (s *MemoryStore[T]) Get(_ context.Context, owner, id string) (T, error) {
	var zero T
	c := s.lookup(owner)
	if c == nil {
		return zero, ErrNotFound
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	return v, nil
}

// List implements Store.
func (s *MemoryStore[T]) List(_ context.Context, owner string) ([]T, error) {
	c := s.lookup(owner)
	if c == nil {
		return []T{}, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out, nil
}

// Put implements Store.
func (s *MemoryStore[T]) Put(_ context.Context, owner, id string, v T) error {
	c := s.collection(owner)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
	return nil
}

// Delete implements Store.
func (s *MemoryStore[T]) Delete(_ context.Context, owner, id string) error {
	c := s.lookup(owner)
	if c == nil {
		return ErrNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(k string) bool { return k == id })
	return nil
}
