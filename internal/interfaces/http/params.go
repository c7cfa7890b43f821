package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/scoutline-api/internal/domain"
)

// uuidParam lee un parámetro de ruta que debe ser UUID. Un valor mal formado es
// error de validación y no llega al repositorio.
func uuidParam(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.NewValidationError(name, "debe ser un UUID válido")
	}
	return id, nil
}
