package repositories

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// memCollection is the in-memory backing store shared by every repository.
// Records keep insertion order, the way the dashboard tables present them.
type memCollection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
}

func newMemCollection[T any](idOf func(T) string) *memCollection[T] {
	return &memCollection[T]{idOf: idOf}
}

func (c *memCollection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *memCollection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *memCollection[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

func (c *memCollection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *memCollection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *memCollection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
