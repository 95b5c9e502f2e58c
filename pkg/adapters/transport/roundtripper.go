package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/dynurl/pkg/ports"
)

type elementKey struct{}

// Unresolved tokens keep their braces, which are not valid in an escaped path.
var braceEscaper = strings.NewReplacer("{", "%7B", "}", "%7D")

// WithElement marks requests built with ctx for rewriting and records the
// element that triggered them. Requests without an element are sent untouched.
func WithElement(ctx context.Context, element any) context.Context {
	return context.WithValue(ctx, elementKey{}, elementRef{element})
}

// ElementFrom returns the element recorded by WithElement.
func ElementFrom(ctx context.Context) (any, bool) {
	ref, ok := ctx.Value(elementKey{}).(elementRef)
	return ref.element, ok
}

// elementRef keeps a nil element distinguishable from "not marked".
type elementRef struct {
	element any
}

// RoundTripper rewrites the path of marked requests before handing them to Base.
type RoundTripper struct {
	Base   http.RoundTripper
	Engine ports.Rewriter
}

// New wraps base (http.DefaultTransport when nil).
func New(engine ports.Rewriter, base http.RoundTripper) *RoundTripper {
	return &RoundTripper{Base: base, Engine: engine}
}

// Client returns an http.Client whose transport rewrites marked requests.
func Client(engine ports.Rewriter) *http.Client {
	return &http.Client{Transport: New(engine, nil)}
}

// RoundTrip implements http.RoundTripper. The caller's request is never modified.
func (t *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	element, ok := ElementFrom(req.Context())
	if !ok || t.Engine == nil || req.URL == nil {
		return base.RoundTrip(req)
	}

	// RawPath keeps escapes such as %2F that Path has already decoded.
	template := req.URL.RawPath
	if template == "" {
		template = req.URL.Path
	}

	res := t.Engine.Rewrite(req.Context(), template, element)
	if !res.Changed {
		return base.RoundTrip(req)
	}

	decoded, err := url.PathUnescape(res.Path)
	if err != nil {
		return nil, err
	}
	out := req.Clone(req.Context())
	out.URL.Path = decoded
	out.URL.RawPath = braceEscaper.Replace(res.Path)
	return base.RoundTrip(out)
}
