package dynurl

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/dynurl/internal/runtime"
	"github.com/aretw0/dynurl/pkg/config"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/aretw0/dynurl/pkg/ports"
)

// Engine is the high-level entry point for the dynurl library.
// It pairs the placeholder runtime with a configuration store so hosts only
// pass the template and the element that triggered the request.
type Engine struct {
	runtime   *runtime.Engine
	store     *config.Store
	namespace ports.Namespace
	unwrap    domain.Unwrapper
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	initial   domain.Config
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithResolver sets the resolver consulted first for every token.
func WithResolver(r domain.Resolver) Option {
	return func(e *Engine) {
		e.initial.Resolver = r
	}
}

// WithResolverFunc is WithResolver for plain functions.
func WithResolverFunc(fn func(ctx context.Context, name string, element any) (any, bool, error)) Option {
	return WithResolver(domain.ResolverFunc(fn))
}

// WithNamespaceFallback enables (or disables) the namespace lookup after a resolver miss.
func WithNamespaceFallback(enabled bool) Option {
	return func(e *Engine) {
		e.initial.AllowNamespaceFallback = enabled
	}
}

// WithNamespace injects the provider used by the fallback strategy.
func WithNamespace(ns ports.Namespace) Option {
	return func(e *Engine) {
		e.namespace = ns
	}
}

// WithConfigStore shares an existing configuration store. Resolver and fallback
// options given to New are ignored when a store is provided.
func WithConfigStore(store *config.Store) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithUnwrapper replaces the value-container capability check.
func WithUnwrapper(u domain.Unwrapper) Option {
	return func(e *Engine) {
		e.unwrap = u
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new dynurl Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.store == nil {
		eng.store = config.NewStore(eng.initial)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithNamespace(eng.namespace),
		runtime.WithUnwrapper(eng.unwrap),
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng
}

// Rewrite substitutes the tokens of template using the current configuration snapshot.
// element is handed to the resolver untouched and may be nil.
func (e *Engine) Rewrite(ctx context.Context, template string, element any) domain.Result {
	return e.runtime.Rewrite(ctx, template, domain.ResolutionContext{
		Element: element,
		Config:  e.store.Load(),
	})
}

// RewriteWith substitutes the tokens of template using an explicit context,
// bypassing the configuration store.
func (e *Engine) RewriteWith(ctx context.Context, template string, rc domain.ResolutionContext) domain.Result {
	return e.runtime.Rewrite(ctx, template, rc)
}

// Apply rewrites req.Path in place and reports whether it changed.
// The path is only assigned when at least one token was substituted.
func (e *Engine) Apply(ctx context.Context, req *domain.Request) bool {
	if req == nil {
		return false
	}
	res := e.Rewrite(ctx, req.Path, req.Element)
	if res.Changed {
		req.Path = res.Path
	}
	return res.Changed
}

// Config returns the store holding the resolver and fallback flag.
func (e *Engine) Config() *config.Store {
	return e.store
}

// Namespace returns the provider used by the fallback strategy, or nil.
func (e *Engine) Namespace() ports.Namespace {
	return e.namespace
}

var _ ports.Rewriter = (*Engine)(nil)
