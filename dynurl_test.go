package dynurl_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/pkg/adapters/memory"
	"github.com/aretw0/dynurl/pkg/config"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appResolver mirrors a typical host resolver: static ids plus one read from the element.
func appResolver(_ context.Context, name string, element any) (any, bool, error) {
	switch name {
	case "userId":
		return "u1", true, nil
	case "itemId":
		return 42, true, nil
	case "elemSpecific":
		if attrs, ok := element.(domain.Attributes); ok {
			if v, ok := attrs.Lookup("data-id"); ok {
				return v, true, nil
			}
		}
	case "throws":
		return nil, false, errors.New("resolver bug")
	}
	return nil, false, nil
}

func TestFacade_Rewrite(t *testing.T) {
	ns := memory.NewNamespace(map[string]any{
		"mockFallbackId": 888,
		"mockSystem":     map[string]any{"details": map[string]any{"code": "alpha"}},
	})
	engine := dynurl.New(
		dynurl.WithResolverFunc(appResolver),
		dynurl.WithNamespace(ns),
	)
	ctx := context.Background()

	res := engine.Rewrite(ctx, "/users/{userId}/items/{itemId}/{mockFallbackId}", nil)
	assert.Equal(t, "/users/u1/items/42/{mockFallbackId}", res.Path)
	assert.True(t, res.Changed)

	engine.Config().SetNamespaceFallback(true)
	res = engine.Rewrite(ctx, "/items/{mockFallbackId}/systems/{mockSystem.details.code}/{throws}", nil)
	assert.Equal(t, "/items/888/systems/alpha/{throws}", res.Path)
	require.Len(t, res.Resolutions, 3)
	assert.Equal(t, domain.StrategyNamespace, res.Resolutions[0].Strategy)
	assert.Equal(t, []string{"throws"}, res.Unresolved())

	res = engine.Rewrite(ctx, "/e/{elemSpecific}", domain.Attributes{"data-id": "a/b c"})
	assert.Equal(t, "/e/a%2Fb%20c", res.Path)

	assert.Same(t, ns, engine.Namespace())
}

func TestFacade_Apply(t *testing.T) {
	engine := dynurl.New(dynurl.WithResolverFunc(appResolver))
	ctx := context.Background()

	req := &domain.Request{Path: "/users/{userId}"}
	assert.True(t, engine.Apply(ctx, req))
	assert.Equal(t, "/users/u1", req.Path)

	req = &domain.Request{Path: "/users/{unknown}"}
	assert.False(t, engine.Apply(ctx, req))
	assert.Equal(t, "/users/{unknown}", req.Path)

	assert.False(t, engine.Apply(ctx, nil))
}

func TestFacade_SharedConfigStore(t *testing.T) {
	store := config.NewStore(domain.Config{})
	engine := dynurl.New(dynurl.WithConfigStore(store), dynurl.WithResolverFunc(appResolver))
	ctx := context.Background()

	// Options are ignored once a store is shared.
	assert.Equal(t, "/{userId}", engine.Rewrite(ctx, "/{userId}", nil).Path)

	store.SetResolver(domain.MapResolver{"userId": "from-store"})
	assert.Equal(t, "/from-store", engine.Rewrite(ctx, "/{userId}", nil).Path)
	assert.Same(t, store, engine.Config())
}

func TestFacade_RewriteWith(t *testing.T) {
	engine := dynurl.New(dynurl.WithResolverFunc(appResolver))
	res := engine.RewriteWith(context.Background(), "/{userId}", domain.ResolutionContext{
		Config: domain.Config{Resolver: domain.MapResolver{"userId": "override"}},
	})
	assert.Equal(t, "/override", res.Path)
}

func TestFacade_HooksAreMerged(t *testing.T) {
	var first, second int
	engine := dynurl.New(
		dynurl.WithResolverFunc(appResolver),
		dynurl.WithLifecycleHooks(domain.LifecycleHooks{
			OnRewrite: func(context.Context, *domain.RewriteEvent) { first++ },
		}),
		dynurl.WithLifecycleHooks(domain.LifecycleHooks{
			OnRewrite: func(context.Context, *domain.RewriteEvent) { second++ },
		}),
	)
	engine.Rewrite(context.Background(), "/{userId}", nil)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestFacade_ConcurrentReconfiguration(t *testing.T) {
	engine := dynurl.New(dynurl.WithResolver(domain.MapResolver{"id": "a"}))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				if (i+j)%10 == 0 {
					engine.Config().SetResolver(domain.MapResolver{"id": "b"})
				}
				res := engine.Rewrite(ctx, "/{id}", nil)
				assert.Contains(t, []string{"/a", "/b"}, res.Path)
			}
		}()
	}
	wg.Wait()
}
