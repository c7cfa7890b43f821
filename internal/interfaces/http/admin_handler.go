package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/rs/zerolog"
)

// AdminHandler administración de usuarios.
type AdminHandler struct {
	uc  *usecase.AdminUseCase
	log zerolog.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Produce      json
// @Param        role    query  string  false  "USER, ATHLETE, RECRUITER o ADMIN"
// @Param        limit   query  int     false  "máx. 100"
// @Param        offset  query  int     false  "offset"
// @Success      200  {object}  dto.UserListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext(), c.Query("role"), pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Cambiar el rol de un usuario
// @Description  No crea perfiles; el token del usuario refleja el cambio en su próximo login.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateRoleRequest  true  "rol"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRole(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
