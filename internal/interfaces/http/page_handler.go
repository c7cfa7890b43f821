package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/onboarding"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/jhoicas/scoutline-api/internal/domain/access"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/rs/zerolog"
)

// PageHandler modelos JSON de las páginas protegidas por RouteGate.
// El gate ya decidió el acceso; aquí solo se arma el modelo.
type PageHandler struct {
	onboarding *onboarding.Service
	admin      *usecase.AdminUseCase
	cookies    CookieConfig
	log        zerolog.Logger
}

// NewPageHandler construye el handler.
func NewPageHandler(svc *onboarding.Service, admin *usecase.AdminUseCase, cookies CookieConfig, log zerolog.Logger) *PageHandler {
	return &PageHandler{onboarding: svc, admin: admin, cookies: cookies, log: log}
}

// Home página pública con el resumen de sesión.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	s := GetSession(c)
	if s == nil {
		return c.JSON(fiber.Map{"page": "home", "session": fiber.Map{"isLoggedIn": false}})
	}
	return c.JSON(fiber.Map{"page": "home", "session": s, "dashboard": access.RoleHomePath(s.Role)})
}

// Dashboard redirige al dashboard del rol de la sesión.
// Los handlers de página confían en RouteGate, pero sin sesión nunca renderizan.
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	if GetSession(c) == nil {
		return c.Redirect(access.HomePath, fiber.StatusSeeOther)
	}
	return c.Redirect(access.RoleHomePath(GetRole(c)), fiber.StatusSeeOther)
}

// RoleDashboard modelo de /dashboard/<rol>.
func (h *PageHandler) RoleDashboard(c *fiber.Ctx) error {
	if _, ok := entity.ParseRole(c.Params("role")); !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "página no encontrada"})
	}
	s := GetSession(c)
	if s == nil {
		return c.Redirect(access.HomePath, fiber.StatusSeeOther)
	}
	state := h.onboarding.State(c.UserContext(), s)
	view := dto.DashboardView{
		Session:       s,
		State:         state,
		CanSelectRole: s.Role == entity.RoleUser,
	}
	if state != dto.StateProfileComplete {
		view.OnboardingPath = access.OnboardingPathFor(s.Role)
	}
	return c.JSON(view)
}

// Onboarding decide qué formulario mostrar: la pista de la cookie selected_role y,
// si no hay, el rol de la sesión. Con el perfil ya completo redirige al dashboard.
func (h *PageHandler) Onboarding(c *fiber.Ctx) error {
	s := GetSession(c)
	if s == nil {
		return c.Redirect(access.HomePath, fiber.StatusSeeOther)
	}
	state := h.onboarding.State(c.UserContext(), s)
	if state == dto.StateProfileComplete {
		return c.Redirect(access.RoleHomePath(s.Role), fiber.StatusSeeOther)
	}
	view := dto.OnboardingView{State: state}
	if hint, ok := entity.ParseRole(c.Cookies(h.cookies.SelectedRoleName)); ok && hint.HasProfile() {
		view.SelectedRole = hint.Segment()
		view.Form = hint.Segment()
	} else if s.Role.HasProfile() {
		view.Form = s.Role.Segment()
	}
	return c.JSON(view)
}

// OnboardingRole modelo del formulario de /onboarding/<rol>.
func (h *PageHandler) OnboardingRole(c *fiber.Ctx) error {
	role, ok := entity.ParseRole(c.Params("role"))
	if !ok || !role.HasProfile() {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "página no encontrada"})
	}
	s := GetSession(c)
	if s == nil {
		return c.Redirect(access.HomePath, fiber.StatusSeeOther)
	}
	state := h.onboarding.State(c.UserContext(), s)
	if state == dto.StateProfileComplete {
		return c.Redirect(access.RoleHomePath(s.Role), fiber.StatusSeeOther)
	}
	return c.JSON(dto.OnboardingView{State: state, Form: role.Segment()})
}

// Admin resumen de usuarios por rol.
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	if GetRole(c) != entity.RoleAdmin || GetSession(c) == nil {
		return c.Redirect(access.HomePath, fiber.StatusSeeOther)
	}
	counts, err := h.admin.Overview(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"page": "admin", "users_by_role": counts})
}
