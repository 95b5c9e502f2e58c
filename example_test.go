package dynurl_test

import (
	"context"
	"fmt"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/pkg/adapters/memory"
	"github.com/aretw0/dynurl/pkg/domain"
)

func ExampleNew() {
	engine := dynurl.New(
		dynurl.WithResolver(domain.MapResolver{"userId": "u 1"}),
	)

	res := engine.Rewrite(context.Background(), "/users/{userId}/items/{itemId}", nil)
	fmt.Println(res.Path, res.Changed, res.Unresolved())
	// Output: /users/u%201/items/{itemId} true [itemId]
}

func ExampleWithNamespace() {
	ns := memory.NewNamespace(map[string]any{
		"mockSystem": map[string]any{"details": map[string]any{"code": "alpha"}},
	})
	engine := dynurl.New(
		dynurl.WithNamespace(ns),
		dynurl.WithNamespaceFallback(true),
	)

	fmt.Println(engine.Rewrite(context.Background(), "/systems/{mockSystem.details.code}", nil).Path)
	// Output: /systems/alpha
}

func ExampleEngine_Apply() {
	engine := dynurl.New(dynurl.WithResolver(domain.ChainResolver{
		domain.MapResolver{"userId": "u1"},
		domain.ElementResolver{Prefix: "attr."},
	}))

	req := &domain.Request{
		Path:    "/users/{userId}/items/{attr.data-id}",
		Element: domain.Attributes{"data-id": "7"},
	}
	changed := engine.Apply(context.Background(), req)
	fmt.Println(req.Path, changed)
	// Output: /users/u1/items/7 true
}
