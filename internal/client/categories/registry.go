// Package categories tracks the session's set of allowed game groupings:
// a fixed built-in set plus labels registered ad hoc (the "+ New Category"
// flow). Labels accumulate for the session's lifetime; there is no removal.
package categories

import "sync"

// Builtins returns the fixed built-in labels, in display order.
func Builtins() []string {
	return []string{"Action", "RPG", "Platformer", "Puzzle"}
}

// Registry is a session-scoped label set. Construct one per session.
type Registry struct {
	mu      sync.Mutex
	labels  []string
	present map[string]struct{}
}

// New constructs a registry seeded with the built-ins.
func New() *Registry {
	r := &Registry{present: make(map[string]struct{})}
	for _, label := range Builtins() {
		r.present[label] = struct{}{}
		r.labels = append(r.labels, label)
	}
	return r
}

// Register adds label to the set. Re-registering an existing label
// (built-in or not) is a no-op; empty labels are ignored.
func (r *Registry) Register(label string) {
	if label == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.present[label]; ok {
		return
	}
	r.present[label] = struct{}{}
	r.labels = append(r.labels, label)
}

// Labels returns every label: built-ins first, then registrations in the
// order they arrived. The returned slice is a copy.
func (r *Registry) Labels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.labels...)
}

// Contains reports whether label is currently registered.
func (r *Registry) Contains(label string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.present[label]
	return ok
}
