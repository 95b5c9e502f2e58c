package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	res := domain.Result{
		Path:    "/users/u1/{missing}",
		Changed: true,
		Resolutions: []domain.Resolution{
			{Name: "id", Resolved: true, Strategy: domain.StrategyResolver, Value: "u1", Occurrences: 1},
			{Name: "missing", Strategy: domain.StrategyNone, Err: errors.New("unresolved placeholder")},
		},
	}

	t.Run("Quiet", func(t *testing.T) {
		var buf bytes.Buffer
		PrintResult(&buf, res, false)
		assert.Equal(t, "/users/u1/{missing}\n", buf.String())
	})

	t.Run("Verbose", func(t *testing.T) {
		var buf bytes.Buffer
		PrintResult(&buf, res, true)
		out := buf.String()
		assert.Contains(t, out, "{id} via resolver")
		assert.Contains(t, out, "{missing}: unresolved placeholder")
	})
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "dynurl")
	assert.Contains(t, buf.String(), "v1.2.3")
}
