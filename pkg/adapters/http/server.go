package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/aretw0/dynurl/pkg/ports"
	"github.com/go-chi/chi/v5"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// maxBodyBytes bounds POST /rewrite payloads.
const maxBodyBytes = 64 << 10

// HealthChecker is implemented by namespaces with a reachable backend (Redis).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server implements the generated ServerInterface.
type Server struct {
	Engine  ports.Rewriter
	Health  HealthChecker
	Metrics http.Handler
	Logger  *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// Option configures the handler.
type Option func(*Server)

// WithHealthChecker makes GET /health ping the namespace backend.
func WithHealthChecker(h HealthChecker) Option {
	return func(s *Server) {
		s.Health = h
	}
}

// WithMetricsHandler mounts h (usually promhttp) at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Rewriter, opts ...Option) http.Handler {
	server := &Server{Engine: engine}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			server.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}

	handler := HandlerFromMux(server, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>dynurl API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
        window.ui = SwaggerUIBundle({
            url: '/openapi.yaml',
            dom_id: '#swagger-ui',
        });
    };
</script>
</body>
</html>
`

// Rewrite handles the POST /rewrite request.
func (s *Server) Rewrite(w http.ResponseWriter, r *http.Request) {
	var body RewriteJSONRequestBody
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Rewrite: Invalid request body", "error", err)
		return
	}
	if body.Path == "" {
		http.Error(w, "Missing path", http.StatusBadRequest)
		return
	}

	var element any
	if body.Element != nil {
		element = domain.Attributes(*body.Element)
	}
	s.rewrite(w, r, body.Path, element)
}

// RewriteQuery handles the GET /rewrite request. Each attr value is a
// key=value pair of the element.
func (s *Server) RewriteQuery(w http.ResponseWriter, r *http.Request, params RewriteQueryParams) {
	var element any
	if params.Attr != nil {
		attrs := make(domain.Attributes, len(*params.Attr))
		for _, pair := range *params.Attr {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				http.Error(w, "Invalid attr "+pair+": expected key=value", http.StatusBadRequest)
				return
			}
			attrs[key] = value
		}
		element = attrs
	}
	s.rewrite(w, r, params.Path, element)
}

func (s *Server) rewrite(w http.ResponseWriter, r *http.Request, template string, element any) {
	res := s.Engine.Rewrite(r.Context(), template, element)
	s.Logger.Debug("Rewrite: Done", "template", template, "path", res.Path, "changed", res.Changed)

	s.writeJSON(w, http.StatusOK, NewRewriteResponse(res))
}

// NewRewriteResponse maps an engine result onto the wire shape.
func NewRewriteResponse(res domain.Result) RewriteResponse {
	resp := RewriteResponse{
		Path:    res.Path,
		Changed: res.Changed,
	}
	if unresolved := res.Unresolved(); len(unresolved) > 0 {
		resp.Unresolved = &unresolved
	}
	if len(res.Resolutions) > 0 {
		tokens := make([]Resolution, 0, len(res.Resolutions))
		for _, tok := range res.Resolutions {
			item := Resolution{
				Name:     tok.Name,
				Resolved: tok.Resolved,
				Strategy: ResolutionStrategy(tok.Strategy),
			}
			if tok.Err != nil {
				msg := tok.Err.Error()
				item.Error = &msg
			}
			tokens = append(tokens, item)
		}
		resp.Tokens = &tokens
	}
	return resp
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	if s.Health != nil {
		if err := s.Health.Ping(r.Context()); err != nil {
			s.Logger.Error("Health: namespace unreachable", "error", err)
			msg := err.Error()
			s.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: HealthResponseStatusDegraded, Error: &msg})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: HealthResponseStatusOk})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, InfoResponse{
		App:     "dynurl-http",
		Version: dynurl.Version,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
