package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/pkg/adapters/file"
	"github.com/aretw0/dynurl/pkg/adapters/memory"
	"github.com/aretw0/dynurl/pkg/adapters/redis"
	"github.com/aretw0/dynurl/pkg/config"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/aretw0/dynurl/pkg/ports"
)

// AttributePrefix is the token prefix that reads from the triggering element.
const AttributePrefix = "attr."

// Runtime bundles an engine with the resources backing its namespace.
type Runtime struct {
	Engine    *dynurl.Engine
	Namespace ports.Namespace
	Settings  config.Settings
	logger    *slog.Logger
	closers   []io.Closer
}

// NewRuntime initializes an engine with standard CLI conventions:
// settings variables first, then element attributes, then the configured namespace.
func NewRuntime(settings config.Settings, logger *slog.Logger, opts ...dynurl.Option) (*Runtime, error) {
	ns, closer, err := buildNamespace(settings.Namespace, logger)
	if err != nil {
		return nil, fmt.Errorf("error initializing namespace: %w", err)
	}

	rt := &Runtime{Namespace: ns, Settings: settings, logger: logger}
	if closer != nil {
		rt.closers = append(rt.closers, closer)
	}

	engineOpts := []dynurl.Option{
		dynurl.WithLogger(logger),
		dynurl.WithResolver(resolverFromSettings(settings)),
		dynurl.WithNamespaceFallback(settings.AllowNamespaceFallback),
	}
	if ns != nil {
		engineOpts = append(engineOpts, dynurl.WithNamespace(ns))
	}
	engineOpts = append(engineOpts, opts...)

	rt.Engine = dynurl.New(engineOpts...)
	return rt, nil
}

// Watch starts hot reload when the namespace supports it and settings ask for it.
// It returns immediately; reloads are logged until ctx is done.
func (r *Runtime) Watch(ctx context.Context) error {
	if !r.Settings.Namespace.Watch {
		return nil
	}
	w, ok := r.Namespace.(ports.Watchable)
	if !ok {
		return fmt.Errorf("namespace kind %q does not support watching", r.Settings.Namespace.Kind)
	}
	ch, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for range ch {
			r.logger.Debug("Namespace change applied")
		}
	}()
	return nil
}

// Close releases namespace resources.
func (r *Runtime) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func buildNamespace(s config.NamespaceSettings, logger *slog.Logger) (ports.Namespace, io.Closer, error) {
	switch s.Kind {
	case config.NamespaceNone, "":
		return nil, nil, nil
	case config.NamespaceMemory:
		return memory.NewNamespace(s.Values), nil, nil
	case config.NamespaceFile:
		ns, err := file.New(s.Path, file.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		return ns, nil, nil
	case config.NamespaceRedis:
		ns := redis.New(s.Redis.Addr, s.Redis.Password, s.Redis.DB, redis.WithPrefix(s.Redis.Prefix))
		return ns, ns, nil
	}
	return nil, nil, fmt.Errorf("unknown namespace kind %q", s.Kind)
}

func resolverFromSettings(s config.Settings) domain.Resolver {
	return domain.ChainResolver{
		domain.MapResolver(s.Variables),
		domain.ElementResolver{Prefix: AttributePrefix},
	}
}

// ParseAssignments turns ["k=v", ...] into a map. Values keep any further '='.
func ParseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected key=value", pair)
		}
		out[k] = v
	}
	return out, nil
}
