package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CuentaEventos(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRouteDecision("allowed")
	c.RecordRouteDecision("allowed")
	c.RecordRouteDecision("wrong_role")
	c.RecordOnboardingRedirect()
	c.RecordRoleSelection("ATHLETE", "created")
	c.RecordSessionResolution("resolved")
	c.RecordProfileLookupFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.routeDecisions.WithLabelValues("allowed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.routeDecisions.WithLabelValues("wrong_role")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.onboardingRedirects))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.roleSelections.WithLabelValues("ATHLETE", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.profileLookupFails))
}

func TestHandler_ExponeMetricas(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordOnboardingRedirect()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "scoutline_onboarding_redirects_total 1")
}
