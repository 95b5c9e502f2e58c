package ports

import "context"

// Watchable defines an interface for providers that can notify about backend changes.
// This is typically used for hot-reload of file-backed namespaces.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying data changes.
	// It abstracts away the specific event details, signaling only that a reload happened.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
