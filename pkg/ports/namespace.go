package ports

import "context"

// Namespace is the read-only root of the fallback strategy.
// Lookup resolves a single, undotted name; the engine walks any further segments.
type Namespace interface {
	// Lookup returns the value bound to name. ok=false means the name is not bound.
	// A non-nil error means the provider failed and the token is left unresolved.
	Lookup(ctx context.Context, name string) (value any, ok bool, err error)
}

// MutableNamespace is a Namespace that host code can update.
type MutableNamespace interface {
	Namespace
	Set(ctx context.Context, name string, value any) error
	Delete(ctx context.Context, name string) error
}

// NamespaceFunc adapts a function to the Namespace interface.
type NamespaceFunc func(ctx context.Context, name string) (any, bool, error)

// Lookup calls f(ctx, name).
func (f NamespaceFunc) Lookup(ctx context.Context, name string) (any, bool, error) {
	return f(ctx, name)
}
