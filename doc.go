/*
Package dynurl rewrites URL path templates such as "/users/{userId}/orders/{orderId}"
right before a request is dispatched.

Each `{name}` token is resolved by an ordered chain of two strategies:

 1. the application Resolver, always tried first when configured;
 2. a Namespace lookup by dotted name ("sys.details.code"), only when the
    resolver missed and the fallback is enabled.

Resolved values are stringified and percent-encoded as URI components. Tokens
nobody can resolve are left verbatim, and failures in collaborators never escape
Rewrite: they are logged and reported per token.

# Usage

	ns := memory.NewNamespace(map[string]any{
		"sys": map[string]any{"details": map[string]any{"code": "alpha"}},
	})

	eng := dynurl.New(
		dynurl.WithResolver(domain.MapResolver{"userId": "u1"}),
		dynurl.WithNamespace(ns),
		dynurl.WithNamespaceFallback(true),
	)

	res := eng.Rewrite(ctx, "/users/{userId}/systems/{sys.details.code}", nil)
	// res.Path == "/users/u1/systems/alpha", res.Changed == true

Hosts that issue requests through net/http can install the transport adapter so
every request marked with transport.WithElement is rewritten automatically.
*/
package dynurl
