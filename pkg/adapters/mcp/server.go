package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/internal/runtime"
	httpAdapter "github.com/aretw0/dynurl/pkg/adapters/http"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/aretw0/dynurl/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TokensResponse lists the placeholders of a template in order of appearance.
type TokensResponse struct {
	Tokens []string `json:"tokens" jsonschema_description:"Placeholder names, duplicates included"`
}

// Server wraps an engine and exposes it as an MCP server.
type Server struct {
	engine    ports.Rewriter
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the server logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP server instance.
func NewServer(engine ports.Rewriter, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("dynurl-mcp", dynurl.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// ServeStdio serves on Stdin/Stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over Server-Sent Events on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "addr", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	rewriteTool := mcp.NewTool("rewrite_path",
		mcp.WithDescription("Replace {name} placeholders in a URL path template. Unresolved placeholders are left as written."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path template, e.g. /users/{userId}")),
		mcp.WithString("element", mcp.Description("JSON object of element attributes (optional)")),
		mcp.WithOutputSchema[httpAdapter.RewriteResponse](),
	)
	s.mcpServer.AddTool(rewriteTool, mcp.NewStructuredToolHandler(s.handleRewrite))

	tokensTool := mcp.NewTool("list_tokens",
		mcp.WithDescription("List the placeholder names of a path template without resolving them."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path template")),
		mcp.WithOutputSchema[TokensResponse](),
	)
	s.mcpServer.AddTool(tokensTool, mcp.NewStructuredToolHandler(s.handleListTokens))
}

func (s *Server) handleRewrite(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (httpAdapter.RewriteResponse, error) {
	path, _ := args["path"].(string)
	if path == "" {
		return httpAdapter.RewriteResponse{}, errors.New("path is required")
	}

	var element any
	if raw, ok := args["element"].(string); ok && raw != "" {
		var attrs domain.Attributes
		if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
			s.logger.Warn("MCP Rewrite: element rejected", "error", err)
			return httpAdapter.RewriteResponse{}, fmt.Errorf("element must be a JSON object of strings: %w", err)
		}
		element = attrs
	}

	res := s.engine.Rewrite(ctx, path, element)
	s.logger.Debug("MCP Rewrite: Done", "template", path, "path", res.Path, "changed", res.Changed)
	return httpAdapter.NewRewriteResponse(res), nil
}

func (s *Server) handleListTokens(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TokensResponse, error) {
	path, _ := args["path"].(string)
	tokens := runtime.ExtractTokens(path)
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		names = append(names, tok.Name)
	}
	return TokensResponse{Tokens: names}, nil
}
