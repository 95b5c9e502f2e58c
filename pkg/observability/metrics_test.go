package observability_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/aretw0/dynurl/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsResolutions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	eng := dynurl.New(
		dynurl.WithResolverFunc(func(_ context.Context, name string, _ any) (any, bool, error) {
			switch name {
			case "id":
				return "1", true, nil
			case "bad":
				return nil, false, errors.New("boom")
			}
			return nil, false, nil
		}),
		dynurl.WithLifecycleHooks(m.Hooks()),
	)

	eng.Rewrite(context.Background(), "/items/{id}/{bad}/{missing}", nil)
	eng.Rewrite(context.Background(), "/static/path", nil)

	expected := `
# HELP dynurl_resolutions_total Placeholder resolutions by strategy and outcome
# TYPE dynurl_resolutions_total counter
dynurl_resolutions_total{outcome="error",strategy="none"} 1
dynurl_resolutions_total{outcome="miss",strategy="none"} 1
dynurl_resolutions_total{outcome="resolved",strategy="resolver"} 1
# HELP dynurl_rewrites_total Rewrites of templates containing at least one placeholder
# TYPE dynurl_rewrites_total counter
dynurl_rewrites_total{changed="true"} 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "dynurl_resolutions_total", "dynurl_rewrites_total")
	assert.NoError(t, err)
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, observability.OutcomeResolved, observability.Outcome(&domain.ResolveEvent{Resolved: true}))
	assert.Equal(t, observability.OutcomeMiss, observability.Outcome(&domain.ResolveEvent{Err: domain.ErrUnresolved}))
	assert.Equal(t, observability.OutcomeError, observability.Outcome(&domain.ResolveEvent{
		Err: &domain.ResolveError{Name: "x", Strategy: domain.StrategyNamespace, Err: domain.ErrAccessorFailed},
	}))
}
