package config

import (
	"sync/atomic"

	"github.com/aretw0/dynurl/pkg/domain"
)

// Store is the process-wide configuration slot read by host adapters.
// Each rewrite takes one snapshot via Load, so concurrent updates never mix
// the resolver of one configuration with the fallback flag of another.
type Store struct {
	current atomic.Pointer[domain.Config]
}

// NewStore creates a store holding initial.
func NewStore(initial domain.Config) *Store {
	s := &Store{}
	s.Store(initial)
	return s
}

// Load returns the current snapshot.
func (s *Store) Load() domain.Config {
	if cfg := s.current.Load(); cfg != nil {
		return *cfg
	}
	return domain.Config{}
}

// Store replaces the whole configuration.
func (s *Store) Store(cfg domain.Config) {
	s.current.Store(&cfg)
}

// Update applies fn to a copy of the current configuration and publishes it.
func (s *Store) Update(fn func(*domain.Config)) {
	for {
		old := s.current.Load()
		next := domain.Config{}
		if old != nil {
			next = *old
		}
		fn(&next)
		if s.current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetResolver swaps the resolver, keeping the fallback flag.
func (s *Store) SetResolver(r domain.Resolver) {
	s.Update(func(c *domain.Config) { c.Resolver = r })
}

// SetNamespaceFallback toggles the namespace fallback, keeping the resolver.
func (s *Store) SetNamespaceFallback(enabled bool) {
	s.Update(func(c *domain.Config) { c.AllowNamespaceFallback = enabled })
}
