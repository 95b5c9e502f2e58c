package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	nsPath := filepath.Join(dir, "ns.yaml")
	require.NoError(t, os.WriteFile(nsPath, []byte("sys:\n  details:\n    code: alpha\n"), 0644))

	t.Run("Version", func(t *testing.T) {
		assert.Contains(t, execute(t, "version"), "dynurl version")
	})

	t.Run("Rewrite with variables and attributes", func(t *testing.T) {
		out := execute(t, "rewrite", "/users/{userId}/items/{attr.data-id}", "--var", "userId=u 1", "--attr", "data-id=7")
		assert.Equal(t, "/users/u%201/items/7\n", out)
	})

	t.Run("Rewrite with namespace fallback as JSON", func(t *testing.T) {
		out := execute(t, "rewrite", "/systems/{sys.details.code}/{nope}", "--namespace", nsPath, "--fallback", "--json")

		var resp struct {
			Path       string   `json:"path"`
			Changed    bool     `json:"changed"`
			Unresolved []string `json:"unresolved"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "/systems/alpha/{nope}", resp.Path)
		assert.True(t, resp.Changed)
		assert.Equal(t, []string{"nope"}, resp.Unresolved)
	})

	t.Run("Settings file", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "dynurl.yaml")
		cfg := "allow_namespace_fallback: true\nlog_level: error\nnamespace:\n  kind: memory\n  values:\n    chat:\n      id: 111\n"
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

		out := execute(t, "rewrite", "/chats/{chat.id}", "--config", cfgPath, "--json=false", "--namespace=", "--fallback=true")
		assert.Equal(t, "/chats/111\n", out)
	})

	t.Run("MCP rejects unknown transport", func(t *testing.T) {
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs([]string{"mcp", "--transport", "carrier-pigeon"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown transport")
	})
}
