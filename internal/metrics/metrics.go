// Package metrics expone las métricas Prometheus del gate de rutas, la resolución
// de sesión y el alta de perfiles.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder es el contrato que usan los casos de uso y middlewares.
type Recorder interface {
	RecordRouteDecision(outcome string)
	RecordOnboardingRedirect()
	RecordRoleSelection(role, result string)
	RecordSessionResolution(result string)
	RecordProfileLookupFailure()
}

// Collector implementación Prometheus de Recorder.
type Collector struct {
	routeDecisions      *prometheus.CounterVec
	onboardingRedirects prometheus.Counter
	roleSelections      *prometheus.CounterVec
	sessionResolutions  *prometheus.CounterVec
	profileLookupFails  prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector crea el Collector y registra sus métricas en reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		routeDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoutline_route_decisions_total",
			Help: "Decisiones del gate de rutas por resultado",
		}, []string{"outcome"}),
		onboardingRedirects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_onboarding_redirects_total",
			Help: "Redirecciones a onboarding por perfil de dominio ausente",
		}),
		roleSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoutline_role_selections_total",
			Help: "Selecciones de rol (alta de perfil) por rol y resultado",
		}, []string{"role", "result"}),
		sessionResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoutline_session_resolutions_total",
			Help: "Resoluciones de sesión por resultado",
		}, []string{"result"}),
		profileLookupFails: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_profile_lookup_failures_total",
			Help: "Fallos del store al verificar la existencia de un perfil",
		}),
	}

	reg.MustRegister(
		c.routeDecisions,
		c.onboardingRedirects,
		c.roleSelections,
		c.sessionResolutions,
		c.profileLookupFails,
	)
	return c
}

// RecordRouteDecision registra una decisión del gate (allowed, unauthenticated, admin_only, wrong_role).
func (c *Collector) RecordRouteDecision(outcome string) {
	c.routeDecisions.WithLabelValues(outcome).Inc()
}

// RecordOnboardingRedirect registra una redirección a onboarding.
func (c *Collector) RecordOnboardingRedirect() {
	c.onboardingRedirects.Inc()
}

// RecordRoleSelection registra el resultado de una selección de rol.
func (c *Collector) RecordRoleSelection(role, result string) {
	c.roleSelections.WithLabelValues(role, result).Inc()
}

// RecordSessionResolution registra el resultado de resolver una sesión.
func (c *Collector) RecordSessionResolution(result string) {
	c.sessionResolutions.WithLabelValues(result).Inc()
}

// RecordProfileLookupFailure registra un fallo del store en la verificación de perfil.
func (c *Collector) RecordProfileLookupFailure() {
	c.profileLookupFails.Inc()
}

// Handler devuelve el handler HTTP para el scrape de Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop Recorder que no registra nada.
type Nop struct{}

func (Nop) RecordRouteDecision(string)         {}
func (Nop) RecordOnboardingRedirect()          {}
func (Nop) RecordRoleSelection(string, string) {}
func (Nop) RecordSessionResolution(string)     {}
func (Nop) RecordProfileLookupFailure()        {}
