package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventResolve EventType = "resolve"
	EventRewrite EventType = "rewrite"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ResolveEvent is emitted once per distinct token name.
type ResolveEvent struct {
	EventBase
	Name      string        `json:"name"`
	Strategy  Strategy      `json:"strategy"`
	Resolved  bool          `json:"resolved"`
	Attempted []Strategy    `json:"attempted"`
	Err       error         `json:"-"`
	Duration  time.Duration `json:"duration"`
}

// RewriteEvent is emitted once per rewrite that contained at least one token.
type RewriteEvent struct {
	EventBase
	Template string        `json:"template"`
	Path     string        `json:"path"`
	Changed  bool          `json:"changed"`
	Tokens   int           `json:"tokens"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnResolve func(context.Context, *ResolveEvent)
	OnRewrite func(context.Context, *RewriteEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnResolve: chainHook(h.OnResolve, other.OnResolve),
		OnRewrite: chainHook(h.OnRewrite, other.OnRewrite),
	}
}

func chainHook[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
