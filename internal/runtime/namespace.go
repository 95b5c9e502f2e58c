package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/dynurl/pkg/domain"
)

// lookupNamespace walks a dotted name starting at the namespace root.
// Every segment must be an owned member of the value before it.
func (e *Engine) lookupNamespace(ctx context.Context, name string) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			value, err = nil, &domain.ResolveError{Name: name, Strategy: domain.StrategyNamespace, Err: fmt.Errorf("traversal panic: %v", p)}
		}
	}()

	segments := strings.Split(name, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, notFound(name)
		}
	}

	current, ok, err := e.namespace.Lookup(ctx, segments[0])
	if err != nil {
		return nil, &domain.ResolveError{Name: name, Strategy: domain.StrategyNamespace, Err: err}
	}
	if !ok {
		return nil, notFound(name)
	}

	for _, seg := range segments[1:] {
		current, ok = Member(current, seg)
		if !ok {
			return nil, notFound(name)
		}
	}

	return e.unwrapValue(name, current)
}

func (e *Engine) unwrapValue(name string, v any) (value any, err error) {
	// A bound nil is found and renders as "", same as a nil from the resolver.
	if isNil(v) {
		return nil, nil
	}
	defer func() {
		if p := recover(); p != nil {
			value, err = nil, accessorFailed(name, fmt.Errorf("panic: %v", p))
		}
	}()
	unwrapped, handled, uerr := e.unwrap(v)
	if uerr != nil {
		return nil, accessorFailed(name, uerr)
	}
	if !handled {
		return v, nil
	}
	return unwrapped, nil
}

// DefaultUnwrap calls the parameterless accessor of ValueContainer and Getter values.
func DefaultUnwrap(v any) (any, bool, error) {
	switch c := v.(type) {
	case domain.ValueContainer:
		val, err := c.Get()
		return val, true, err
	case domain.Getter:
		return c.Get(), true, nil
	}
	return v, false, nil
}

func notFound(name string) error {
	return &domain.ResolveError{Name: name, Strategy: domain.StrategyNamespace, Err: domain.ErrSegmentNotFound}
}

func accessorFailed(name string, err error) error {
	return &domain.ResolveError{Name: name, Strategy: domain.StrategyNamespace, Err: fmt.Errorf("%w: %w", domain.ErrAccessorFailed, err)}
}
