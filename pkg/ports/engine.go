package ports

import (
	"context"

	"github.com/aretw0/dynurl/pkg/domain"
)

// Rewriter is the engine surface used by host adapters (HTTP service, RoundTripper, CLI).
type Rewriter interface {
	// Rewrite substitutes every resolvable token in template and never fails.
	Rewrite(ctx context.Context, template string, element any) domain.Result
}
