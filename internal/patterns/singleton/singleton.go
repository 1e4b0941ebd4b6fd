// Package singleton demonstrates three ways to share one thing: a single
// instance, one lazily built value per type, and many instances over shared
// state (the Borg).
package singleton

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Singleton is the process-wide instance returned by Instance.
type Singleton struct {
	ID string
}

var (
	instance     *Singleton
	instanceOnce sync.Once
)

// Instance returns the one Singleton, creating it on first use.
func Instance() *Singleton {
	instanceOnce.Do(func() {
		instance = &Singleton{ID: uuid.NewString()}
	})
	return instance
}

// Once wraps ctor so that it runs at most once; every call of the returned
// getter yields the same value.
func Once[T any](ctor func() T) func() T {
	return sync.OnceValue(ctor)
}

// Bar is a fancy object that only exists once.
type Bar struct {
	ID string
}

// NewBar returns a Bar with a fresh ID.
func NewBar() *Bar {
	return &Bar{ID: uuid.NewString()}
}

// GetBar returns the shared Bar.
var GetBar = Once(NewBar)

// Hive is the state shared by every Borg that joins it.
type Hive struct {
	mu    sync.RWMutex
	keys  []string
	state map[string]string
}

// NewHive returns an empty hive.
func NewHive() *Hive {
	return &Hive{state: make(map[string]string)}
}

// Join merges attrs into the hive and returns a new Borg attached to it.
// Keys are applied in sorted order so later joins are reproducible.
func (h *Hive) Join(attrs map[string]string) *Borg {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		if _, ok := h.state[k]; !ok {
			h.keys = append(h.keys, k)
		}
		h.state[k] = attrs[k]
	}
	return &Borg{hive: h}
}

// Borg is a distinct instance that sees the hive's state.
type Borg struct {
	hive *Hive
}

// Get returns one attribute of the shared state.
func (b *Borg) Get(key string) (string, bool) {
	b.hive.mu.RLock()
	defer b.hive.mu.RUnlock()
	v, ok := b.hive.state[key]
	return v, ok
}

// State returns a copy of the shared state.
func (b *Borg) State() map[string]string {
	b.hive.mu.RLock()
	defer b.hive.mu.RUnlock()
	return maps.Clone(b.hive.state)
}

// String prints the shared state in insertion order.
func (b *Borg) String() string {
	b.hive.mu.RLock()
	defer b.hive.mu.RUnlock()

	pairs := make([]string, 0, len(b.hive.keys))
	for _, k := range b.hive.keys {
		pairs = append(pairs, fmt.Sprintf("%q: %q", k, b.hive.state[k]))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
