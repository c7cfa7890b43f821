package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/domain/access"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/metrics"
)

// onboardingChecker lo implementa *onboarding.Service.
type onboardingChecker interface {
	NeedsOnboarding(ctx context.Context, session *entity.Session) bool
}

// RouteGate protege las páginas /dashboard, /admin y /onboarding con access.Evaluate.
// Una denegación responde 303 al destino de la decisión. Si se permite un /dashboard
// a un ATHLETE/RECRUITER sin perfil, redirige a su onboarding.
// Debe ir después de SessionMiddleware.
func RouteGate(checker onboardingChecker, rec metrics.Recorder) fiber.Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if !access.IsProtected(path) {
			return c.Next()
		}
		session := GetSession(c)
		decision, reason := access.Evaluate(session, path)
		rec.RecordRouteDecision(reason)
		if !decision.Allow {
			return c.Redirect(decision.RedirectTo, fiber.StatusSeeOther)
		}
		if access.IsDashboard(path) && checker.NeedsOnboarding(c.UserContext(), session) {
			rec.RecordOnboardingRedirect()
			return c.Redirect(access.OnboardingPathFor(session.Role), fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
