package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/dynurl"
	httpAdapter "github.com/aretw0/dynurl/pkg/adapters/http"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	eng := dynurl.New(dynurl.WithResolver(domain.ChainResolver{
		domain.MapResolver{"userId": "u1"},
		domain.ElementResolver{Prefix: "attr."},
	}))
	return NewServer(eng)
}

func callTool(t *testing.T, name string, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestRewriteTool(t *testing.T) {
	s := newTestServer()
	handler := mcp.NewStructuredToolHandler(s.handleRewrite)

	res := callTool(t, "rewrite_path", handler, map[string]any{
		"path":    "/users/{userId}/{attr.data-id}/{nope}",
		"element": `{"data-id": "a/b"}`,
	})
	require.False(t, res.IsError)
	out, ok := res.StructuredContent.(httpAdapter.RewriteResponse)
	require.True(t, ok)
	assert.Equal(t, "/users/u1/a%2Fb/{nope}", out.Path)
	assert.True(t, out.Changed)
	require.NotNil(t, out.Unresolved)
	assert.Equal(t, []string{"nope"}, *out.Unresolved)
}

func TestRewriteTool_RejectsBadArguments(t *testing.T) {
	s := newTestServer()
	handler := mcp.NewStructuredToolHandler(s.handleRewrite)

	res := callTool(t, "rewrite_path", handler, map[string]any{"path": "/{userId}", "element": `["not", "an object"]`})
	assert.True(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "element must be a JSON object")

	res = callTool(t, "rewrite_path", handler, map[string]any{})
	assert.True(t, res.IsError)
}

func TestListTokensTool(t *testing.T) {
	s := newTestServer()

	out, err := s.handleListTokens(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"path": "/{a}/{b.c}/{a}/{",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b.c", "a"}, out.Tokens)

	out, err = s.handleListTokens(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"path": "/static"})
	require.NoError(t, err)
	assert.Empty(t, out.Tokens)
}
