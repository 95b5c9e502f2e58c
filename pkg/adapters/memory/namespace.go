package memory

import (
	"context"
	"maps"
	"sync"
)

// Namespace implements ports.MutableNamespace in memory.
// Safe for concurrent use.
type Namespace struct {
	data map[string]any
	mu   sync.RWMutex
}

// NewNamespace creates a namespace seeded with a copy of values.
func NewNamespace(values map[string]any) *Namespace {
	data := make(map[string]any, len(values))
	maps.Copy(data, values)
	return &Namespace{data: data}
}

// Lookup returns the value bound to name.
func (n *Namespace) Lookup(_ context.Context, name string) (any, bool, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.data[name]
	return v, ok, nil
}

// Set binds name to value.
func (n *Namespace) Set(_ context.Context, name string, value any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.data[name] = value
	return nil
}

// Delete unbinds name.
func (n *Namespace) Delete(_ context.Context, name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.data, name)
	return nil
}
