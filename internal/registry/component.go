// Package registry provides a concurrency-safe name -> value registry used
// to hold the component catalogue.
package registry

import (
	"sort"
	"strings"
	"sync"
)

// EventType reports what a Register call did.
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventTypeAdded:
		return "added"
	case EventTypeUpdated:
		return "updated"
	case EventTypeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ComponentRegistry manages named entries. Names are case-insensitive.
type ComponentRegistry[T any] struct {
	entries map[string]T
	mutex   sync.RWMutex
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry[T any]() *ComponentRegistry[T] {
	return &ComponentRegistry[T]{
		entries: make(map[string]T),
	}
}

// Normalize returns the registry key for name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds or replaces the entry stored under name.
func (r *ComponentRegistry[T]) Register(name string, entry T) EventType {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := Normalize(name)
	eventType := EventTypeAdded
	if _, exists := r.entries[key]; exists {
		eventType = EventTypeUpdated
	}
	r.entries[key] = entry
	return eventType
}

// Get retrieves an entry by name.
func (r *ComponentRegistry[T]) Get(name string) (T, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, exists := r.entries[Normalize(name)]
	return entry, exists
}

// GetAll returns a copy of all entries.
func (r *ComponentRegistry[T]) GetAll() map[string]T {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]T, len(r.entries))
	for name, entry := range r.entries {
		result[name] = entry
	}
	return result
}

// Names returns the registered names in sorted order.
func (r *ComponentRegistry[T]) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove deletes an entry. It reports EventTypeRemoved when something was
// deleted.
func (r *ComponentRegistry[T]) Remove(name string) (EventType, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := Normalize(name)
	if _, exists := r.entries[key]; !exists {
		return EventTypeRemoved, false
	}
	delete(r.entries, key)
	return EventTypeRemoved, true
}

// Count returns the number of registered entries.
func (r *ComponentRegistry[T]) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries)
}
