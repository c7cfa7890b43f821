package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/rs/zerolog"
)

// RecruiterHandler perfil propio del reclutador.
type RecruiterHandler struct {
	uc  *usecase.RecruiterUseCase
	log zerolog.Logger
}

// NewRecruiterHandler construye el handler.
func NewRecruiterHandler(uc *usecase.RecruiterUseCase, log zerolog.Logger) *RecruiterHandler {
	return &RecruiterHandler{uc: uc, log: log}
}

// GetMine godoc
// @Summary      Perfil de reclutador propio
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  dto.RecruiterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recruiters/me [get]
func (h *RecruiterHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateMine godoc
// @Summary      Actualizar perfil de reclutador propio
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRecruiterRequest  true  "perfil"
// @Success      200  {object}  dto.RecruiterResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recruiters/me [put]
func (h *RecruiterHandler) UpdateMine(c *fiber.Ctx) error {
	var in dto.UpdateRecruiterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateMine(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
