// Package routes records the named routes of the application so the search
// index can offer them as navigable pages.
package routes

import (
	"sort"
	"sync"
)

// Route is one named route.
type Route struct {
	Name   string `json:"name" yaml:"name"`
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
	Path   string `json:"path" yaml:"path"`
}

// Table is a concurrency-safe list of routes. Adding a route with an
// existing name replaces it.
type Table struct {
	mu     sync.RWMutex
	routes []Route
	index  map[string]int
}

// NewTable creates a table seeded with routes.
func NewTable(routes ...Route) *Table {
	t := &Table{index: make(map[string]int)}
	for _, r := range routes {
		t.Add(r)
	}
	return t
}

// Add records a route.
func (t *Table) Add(r Route) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i, ok := t.index[r.Name]; ok && r.Name != "" {
		t.routes[i] = r
		return
	}
	t.index[r.Name] = len(t.routes)
	t.routes = append(t.routes, r)
}

// Routes returns a copy of the routes in registration order.
func (t *Table) Routes() []Route {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Get looks a route up by name.
func (t *Table) Get(name string) (Route, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.index[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Names returns the route names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.routes))
	for _, r := range t.routes {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}
