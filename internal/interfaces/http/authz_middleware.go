package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// RequireSession corta con 401 si la petición no tiene sesión.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		return c.Next()
	}
}

// RequireRole autoriza solo a las sesiones con alguno de los roles indicados.
// Incluye la verificación de sesión: puede usarse sin RequireSession.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		for _, r := range roles {
			if s.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

// RequirePermission autoriza solo a las sesiones con el permiso indicado.
func RequirePermission(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		if !s.Can(perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_PERMISSION", Message: "falta el permiso " + perm})
		}
		return c.Next()
	}
}
