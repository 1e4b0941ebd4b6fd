package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages demo registration and lookup.
// It provides thread-safe registration and retrieval of demos by name.
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
}

// NewRegistry creates a new demo registry with an empty demo map.
func NewRegistry() *Registry {
	return &Registry{
		demos: make(map[string]Demo),
	}
}

// Register adds a demo to the registry. Returns an error if the demo
// name is empty or if a demo with the same name is already registered.
func (r *Registry) Register(demo Demo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if demo.Name() == "" {
		return fmt.Errorf("demo name cannot be empty")
	}

	if _, exists := r.demos[demo.Name()]; exists {
		return fmt.Errorf("demo %s already registered", demo.Name())
	}

	r.demos[demo.Name()] = demo
	return nil
}

// MustRegister registers demo and panics on failure. Pattern packages call it from init.
func (r *Registry) MustRegister(demo Demo) {
	if err := r.Register(demo); err != nil {
		panic(fmt.Sprintf("failed to register %s demo: %v", demo.Name(), err))
	}
}

// Unregister removes a demo by name. Missing names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.demos, name)
}

// Get retrieves a demo by name.
func (r *Registry) Get(name string) (Demo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	demo, exists := r.demos[name]
	return demo, exists
}

// Lookup resolves every name, failing on the first unknown one.
func (r *Registry) Lookup(names ...string) ([]Demo, error) {
	demos := make([]Demo, 0, len(names))
	for _, name := range names {
		demo, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo: %s", name)
		}
		demos = append(demos, demo)
	}
	return demos, nil
}

// All returns every demo sorted by category, then name.
func (r *Registry) All() []Demo {
	r.mu.RLock()
	demos := make([]Demo, 0, len(r.demos))
	for _, demo := range r.demos {
		demos = append(demos, demo)
	}
	r.mu.RUnlock()

	sort.Slice(demos, func(i, j int) bool {
		if demos[i].Category() != demos[j].Category() {
			return demos[i].Category() < demos[j].Category()
		}
		return demos[i].Name() < demos[j].Name()
	})
	return demos
}

// ByCategory returns the demos in one category, sorted by name.
func (r *Registry) ByCategory(c Category) []Demo {
	var demos []Demo
	for _, demo := range r.All() {
		if demo.Category() == c {
			demos = append(demos, demo)
		}
	}
	return demos
}

// Len returns the number of registered demos.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.demos)
}

var globalRegistry = NewRegistry()

// GetGlobalRegistry returns the registry pattern packages register into.
func GetGlobalRegistry() *Registry {
	return globalRegistry
}
