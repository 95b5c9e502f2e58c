package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunNamespaceContract runs a suite of tests to verify that a MutableNamespace implementation
// adheres to the defined interface contract.
func RunNamespaceContract(t *testing.T, ns MutableNamespace) {
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405")

	t.Run("Set and Lookup", func(t *testing.T) {
		name := "contractUser" + suffix
		err := ns.Set(ctx, name, "u-42")
		require.NoError(t, err, "Set should not return error")

		v, ok, err := ns.Lookup(ctx, name)
		require.NoError(t, err, "Lookup should not return error")
		assert.True(t, ok)
		assert.Equal(t, "u-42", v)
	})

	t.Run("Nested Value", func(t *testing.T) {
		name := "contractSystem" + suffix
		err := ns.Set(ctx, name, map[string]any{
			"details": map[string]any{"code": "alpha"},
		})
		require.NoError(t, err)

		v, ok, err := ns.Lookup(ctx, name)
		require.NoError(t, err)
		require.True(t, ok)
		obj, isMap := v.(map[string]any)
		require.True(t, isMap, "nested values should come back as map[string]any, got %T", v)
		assert.Equal(t, map[string]any{"code": "alpha"}, obj["details"])
	})

	t.Run("Lookup Missing", func(t *testing.T) {
		v, ok, err := ns.Lookup(ctx, "missing"+suffix)
		require.NoError(t, err, "a missing name is not an error")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("Delete", func(t *testing.T) {
		name := "contractGone" + suffix
		require.NoError(t, ns.Set(ctx, name, "bye"))

		err := ns.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, ok, err := ns.Lookup(ctx, name)
		require.NoError(t, err)
		assert.False(t, ok, "Lookup after Delete should miss")
	})
}
