package domain

import (
	"errors"
	"fmt"
)

// ErrResolverFailed is reported when the configured resolver returns an error or panics.
var ErrResolverFailed = errors.New("resolver failed")

// ErrSegmentNotFound is reported when a dotted namespace path does not lead to a value.
// It is an expected "not found" outcome and is never logged by the engine.
var ErrSegmentNotFound = errors.New("namespace segment not found")

// ErrAccessorFailed is reported when unwrapping a value container fails.
var ErrAccessorFailed = errors.New("value accessor failed")

// ErrNamespaceUnavailable is returned by namespace providers that cannot reach their backend.
var ErrNamespaceUnavailable = errors.New("namespace unavailable")

// ErrUnresolved marks a token that no strategy could resolve.
var ErrUnresolved = errors.New("unresolved placeholder")

// ResolveError describes why a single token could not be resolved by a strategy.
type ResolveError struct {
	Name     string
	Strategy Strategy
	Err      error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %q via %s: %v", e.Name, e.Strategy, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
