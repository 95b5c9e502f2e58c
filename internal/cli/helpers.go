package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/aretw0/dynurl/pkg/domain"
)

// ShutdownSignals stop long-running commands.
var ShutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Interrupt is a context cancelled by the first shutdown signal. The signal
// stays available for logging after Done.
type Interrupt struct {
	context.Context
	stop     context.CancelFunc
	received atomic.Value
}

// WithInterrupt returns a context cancelled by one of signals (ShutdownSignals
// when none are given) or by Stop.
func WithInterrupt(parent context.Context, signals ...os.Signal) *Interrupt {
	if len(signals) == 0 {
		signals = ShutdownSignals
	}
	ctx, cancel := context.WithCancel(parent)
	in := &Interrupt{Context: ctx, stop: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			in.received.Store(sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return in
}

// Stop cancels the context and releases the signal subscription.
func (in *Interrupt) Stop() { in.stop() }

// Signal returns the signal that cancelled the context, or nil.
func (in *Interrupt) Signal() os.Signal {
	sig, _ := in.received.Load().(os.Signal)
	return sig
}

// DebugHooks logs every resolution and rewrite at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnResolve: func(ctx context.Context, e *domain.ResolveEvent) {
			if e.Resolved {
				logger.DebugContext(ctx, "Resolve", "name", e.Name, "strategy", e.Strategy, "duration", e.Duration)
			} else {
				logger.DebugContext(ctx, "Resolve (Miss)", "name", e.Name, "attempted", e.Attempted, "err", e.Err)
			}
		},
		OnRewrite: func(ctx context.Context, e *domain.RewriteEvent) {
			logger.DebugContext(ctx, "Rewrite", "template", e.Template, "path", e.Path, "changed", e.Changed, "tokens", e.Tokens)
		},
	}
}
