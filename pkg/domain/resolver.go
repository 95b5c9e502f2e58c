package domain

import (
	"context"
	"strings"
)

// Resolver maps a token name (and the element that triggered the request) to a value.
// Returning ok=false means "not resolved by this strategy"; any value returned with
// ok=true is substituted, including zero values and nil.
type Resolver interface {
	Resolve(ctx context.Context, name string, element any) (value any, ok bool, err error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, name string, element any) (any, bool, error)

// Resolve calls f(ctx, name, element).
func (f ResolverFunc) Resolve(ctx context.Context, name string, element any) (any, bool, error) {
	return f(ctx, name, element)
}

// MapResolver resolves names from a fixed map. Missing keys are not resolved.
type MapResolver map[string]any

// Resolve looks the name up verbatim; dotted names are not split.
func (m MapResolver) Resolve(_ context.Context, name string, _ any) (any, bool, error) {
	v, ok := m[name]
	return v, ok, nil
}

// ChainResolver tries each resolver in order and stops at the first one that resolves.
// An error from one resolver aborts the chain for that name.
type ChainResolver []Resolver

// Resolve walks the chain.
func (c ChainResolver) Resolve(ctx context.Context, name string, element any) (any, bool, error) {
	for _, r := range c {
		if r == nil {
			continue
		}
		v, ok, err := r.Resolve(ctx, name, element)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return nil, false, nil
}

// Config is the read-only configuration snapshot used for one rewrite.
type Config struct {
	// Resolver is consulted first for every token. Nil disables the strategy.
	Resolver Resolver
	// AllowNamespaceFallback enables the namespace lookup when the resolver misses.
	AllowNamespaceFallback bool
}

// ResolutionContext is everything visible to resolvers for the duration of one call.
type ResolutionContext struct {
	Element any
	Config  Config
}

// Request is the mutable request descriptor a host exposes before dispatching.
type Request struct {
	Path    string
	Element any
}

// AttributeSource is implemented by elements that expose named attributes.
type AttributeSource interface {
	Lookup(name string) (string, bool)
}

// ElementResolver resolves names starting with Prefix from the triggering element's
// attributes, e.g. "{attr.data-id}" with Prefix "attr.". An empty Prefix matches every name.
type ElementResolver struct {
	Prefix string
}

// Resolve reads the attribute named by the rest of name.
func (r ElementResolver) Resolve(_ context.Context, name string, element any) (any, bool, error) {
	src, ok := element.(AttributeSource)
	if !ok || !strings.HasPrefix(name, r.Prefix) {
		return nil, false, nil
	}
	v, ok := src.Lookup(strings.TrimPrefix(name, r.Prefix))
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}
