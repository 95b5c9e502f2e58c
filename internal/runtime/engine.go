package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/aretw0/dynurl/pkg/ports"
)

// Engine substitutes `{name}` tokens in path templates.
// It owns no mutable state; every Rewrite works on the snapshot it is given.
type Engine struct {
	namespace ports.Namespace
	unwrap    domain.Unwrapper
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithNamespace sets the provider consulted by the fallback strategy.
func WithNamespace(ns ports.Namespace) EngineOption {
	return func(e *Engine) {
		e.namespace = ns
	}
}

// WithUnwrapper replaces the value-container capability check.
func WithUnwrapper(u domain.Unwrapper) EngineOption {
	return func(e *Engine) {
		if u != nil {
			e.unwrap = u
		}
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		unwrap: DefaultUnwrap,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rewrite returns template with every resolvable token replaced by its encoded value.
// Unresolved tokens are kept verbatim. Collaborator failures are contained per token.
func (e *Engine) Rewrite(ctx context.Context, template string, rc domain.ResolutionContext) domain.Result {
	tokens := ExtractTokens(template)
	if len(tokens) == 0 {
		return domain.Result{Path: template}
	}
	started := time.Now()

	// Each distinct name is resolved once; repeats share the outcome.
	byName := make(map[string]int, len(tokens))
	var resolutions []domain.Resolution
	for _, tok := range tokens {
		if idx, seen := byName[tok.Name]; seen {
			resolutions[idx].Occurrences++
			continue
		}
		res := e.resolve(ctx, tok.Name, rc)
		res.Occurrences = 1
		byName[tok.Name] = len(resolutions)
		resolutions = append(resolutions, res)
	}

	var b strings.Builder
	b.Grow(len(template))
	changed := false
	last := 0
	for _, tok := range tokens {
		b.WriteString(template[last:tok.Start])
		res := resolutions[byName[tok.Name]]
		if res.Resolved {
			b.WriteString(res.Value)
			changed = true
		} else {
			b.WriteString(tok.Match)
		}
		last = tok.End
	}
	b.WriteString(template[last:])

	result := domain.Result{Path: template, Changed: changed, Resolutions: resolutions}
	if changed {
		result.Path = b.String()
	}

	if e.hooks.OnRewrite != nil {
		e.hooks.OnRewrite(ctx, &domain.RewriteEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRewrite},
			Template:  template,
			Path:      result.Path,
			Changed:   changed,
			Tokens:    len(tokens),
			Duration:  time.Since(started),
		})
	}
	return result
}

// resolve runs the strategy chain for a single name.
func (e *Engine) resolve(ctx context.Context, name string, rc domain.ResolutionContext) domain.Resolution {
	started := time.Now()
	res := domain.Resolution{Name: name, Strategy: domain.StrategyNone}
	var (
		attempted []domain.Strategy
		value     any
		found     bool
		cause     error
	)

	if r := rc.Config.Resolver; r != nil {
		attempted = append(attempted, domain.StrategyResolver)
		v, ok, err := callResolver(ctx, r, name, rc.Element)
		switch {
		case err != nil:
			cause = &domain.ResolveError{Name: name, Strategy: domain.StrategyResolver, Err: fmt.Errorf("%w: %w", domain.ErrResolverFailed, err)}
			e.logger.Warn("Resolver failed for placeholder", "name", name, "err", err)
		case ok:
			value, found = v, true
			res.Strategy = domain.StrategyResolver
		}
	}

	if !found && rc.Config.AllowNamespaceFallback && e.namespace != nil {
		attempted = append(attempted, domain.StrategyNamespace)
		v, err := e.lookupNamespace(ctx, name)
		switch {
		case err == nil:
			value, found = v, true
			res.Strategy = domain.StrategyNamespace
		case errors.Is(err, domain.ErrSegmentNotFound):
			cause = err
		default:
			cause = err
			e.logger.Warn("Namespace fallback failed for placeholder", "name", name, "err", err)
		}
	}

	if found {
		res.Resolved = true
		res.Value = EscapeComponent(Stringify(value))
		e.logger.Debug("Placeholder resolved", "name", name, "strategy", res.Strategy)
	} else {
		res.Err = domain.ErrUnresolved
		if cause != nil {
			res.Err = fmt.Errorf("%w: %w", domain.ErrUnresolved, cause)
		}
		e.logger.Warn("Could not resolve placeholder",
			"name", name,
			"resolver", describe(rc.Config.Resolver != nil, "tried", "none"),
			"fallback", describe(rc.Config.AllowNamespaceFallback, "enabled", "disabled"),
		)
	}

	if e.hooks.OnResolve != nil {
		e.hooks.OnResolve(ctx, &domain.ResolveEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventResolve},
			Name:      name,
			Strategy:  res.Strategy,
			Resolved:  res.Resolved,
			Attempted: attempted,
			Err:       res.Err,
			Duration:  time.Since(started),
		})
	}
	return res
}

// callResolver invokes the application resolver, turning panics into errors.
func callResolver(ctx context.Context, r domain.Resolver, name string, element any) (v any, ok bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, ok, err = nil, false, fmt.Errorf("panic: %v", p)
		}
	}()
	return r.Resolve(ctx, name, element)
}

func describe(flag bool, yes, no string) string {
	if flag {
		return yes
	}
	return no
}
