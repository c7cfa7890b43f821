package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/onboarding"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/rs/zerolog"
)

// OnboardingHandler selección de rol y alta del perfil de dominio.
type OnboardingHandler struct {
	uc      *onboarding.RoleSelectionUseCase
	cookies CookieConfig
	log     zerolog.Logger
}

// NewOnboardingHandler construye el handler.
func NewOnboardingHandler(uc *onboarding.RoleSelectionUseCase, cookies CookieConfig, log zerolog.Logger) *OnboardingHandler {
	return &OnboardingHandler{uc: uc, cookies: cookies, log: log}
}

// SelectRoleHint godoc
// @Summary      Guardar el rol elegido antes de crear el perfil
// @Description  Fija la cookie selected_role; no cambia el rol guardado.
// @Tags         onboarding
// @Accept       json
// @Param        body  body  dto.SelectRoleHintRequest  true  "ATHLETE o RECRUITER"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/onboarding/role [post]
func (h *OnboardingHandler) SelectRoleHint(c *fiber.Ctx) error {
	var in dto.SelectRoleHintRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok || !role.HasProfile() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "rol inválido",
			Fields:  map[string]string{"role": "debe ser uno de: ATHLETE RECRUITER"},
		})
	}
	h.cookies.setSelectedRole(c, role.Segment())
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateAthlete godoc
// @Summary      Elegir rol ATHLETE y crear el perfil
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAthleteRequest  true  "perfil de atleta"
// @Success      201  {object}  dto.RoleSelectionResponse
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/onboarding/athlete [post]
func (h *OnboardingHandler) CreateAthlete(c *fiber.Ctx) error {
	var in dto.CreateAthleteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SelectAthlete(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return h.respond(c, out)
}

// CreateRecruiter godoc
// @Summary      Elegir rol RECRUITER y crear el perfil
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecruiterRequest  true  "perfil de reclutador"
// @Success      201  {object}  dto.RoleSelectionResponse
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/onboarding/recruiter [post]
func (h *OnboardingHandler) CreateRecruiter(c *fiber.Ctx) error {
	var in dto.CreateRecruiterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SelectRecruiter(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return h.respond(c, out)
}

// respond renueva la cookie de sesión con el token nuevo y limpia la pista de rol.
// Un cliente que prefiere JSON recibe 201; un formulario del navegador, 303 al dashboard.
func (h *OnboardingHandler) respond(c *fiber.Ctx, out *dto.RoleSelectionResponse) error {
	if out.Token != "" {
		h.cookies.setSession(c, out.Token)
	} else {
		// la cookie vieja lleva el rol anterior; sin token nuevo se obliga a re-login
		h.cookies.clearSession(c)
	}
	h.cookies.clearSelectedRole(c)
	if wantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.Redirect(out.RedirectTo, fiber.StatusSeeOther)
}

// wantsJSON true solo si el cliente prefiere application/json sobre HTML.
func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
