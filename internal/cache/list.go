package cache

import (
	"slices"
	"sync"

	"dante/internal/domain"
)

// List is a concurrency-safe ordered collection of records keyed by id.
type List[T domain.Keyed] struct {
	mu    sync.RWMutex
	items []T
	gen   uint64
}

// New returns an empty list.
func New[T domain.Keyed]() *List[T] { return &List[T]{} }

// Generation returns the current generation, to be passed to the mutators.
func (l *List[T]) Generation() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.gen
}

// Items returns a copy of the current items.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Find returns the item with the given key.
func (l *List[T]) Find(key string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, it := range l.items {
		if it.Key() == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Replace swaps in items if gen is still current. It reports whether it applied.
func (l *List[T]) Replace(gen uint64, items []T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.items = slices.Clone(items)
	return true
}

// Prepend inserts item at the front if gen is still current.
func (l *List[T]) Prepend(gen uint64, item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.items = append([]T{item}, l.items...)
	return true
}

// Append inserts item at the back if gen is still current.
func (l *List[T]) Append(gen uint64, item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.items = append(slices.Clone(l.items), item)
	return true
}

// ReplaceByKey swaps the first entry whose key matches item's and drops any
// later entry with the same key. Unknown keys leave the list unchanged.
func (l *List[T]) ReplaceByKey(gen uint64, item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	key := item.Key()
	i := slices.IndexFunc(l.items, func(it T) bool { return it.Key() == key })
	if i < 0 {
		return false
	}
	next := make([]T, 0, len(l.items))
	next = append(next, l.items[:i]...)
	next = append(next, item)
	for _, it := range l.items[i+1:] {
		if it.Key() != key {
			next = append(next, it)
		}
	}
	l.items = next
	return true
}

// RemoveByKey filters out every entry with key.
func (l *List[T]) RemoveByKey(gen uint64, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.items = slices.DeleteFunc(slices.Clone(l.items), func(it T) bool { return it.Key() == key })
	return true
}

// Reset empties the list and starts a new generation.
func (l *List[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.gen++
}
