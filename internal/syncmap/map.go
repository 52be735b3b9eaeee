package syncmap

import "sync"

// Map is a thread-safe generic map that remembers insertion order.
type Map[T any] struct {
	mux  sync.RWMutex
	m    map[string]T
	keys []string
}

// New creates a new instance of Map
func New[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by key
func (r *Map[T]) Get(key string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// PutIfAbsent stores value under key unless the key is already taken. It
// returns false when the key exists; the stored value is left untouched.
func (r *Map[T]) PutIfAbsent(key string, value T) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[key]; ok {
		return false
	}
	r.m[key] = value
	r.keys = append(r.keys, key)
	return true
}

// Keys returns keys in insertion order
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return append([]string(nil), r.keys...)
}

// Values returns a slice of all items in insertion order
func (r *Map[T]) Values() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		ret = append(ret, r.m[k])
	}
	return ret
}

// Len returns number of items
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.keys)
}
