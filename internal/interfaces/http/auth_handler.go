package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/auth"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/rs/zerolog"
)

// AuthHandler maneja registro, login, logout y la sesión actual.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	cookies CookieConfig
	log     zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookies CookieConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookies: cookies, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterUser(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.cookies.setSession(c, out.Token)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		// No se distingue usuario inexistente de password incorrecto.
		if isCredentialError(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return writeError(c, h.log, err)
	}
	h.cookies.setSession(c, out.Token)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.clearSession(c)
	h.cookies.clearSelectedRole(c)
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  entity.Session
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s := GetSession(c)
	if s == nil {
		return c.JSON(fiber.Map{"isLoggedIn": false})
	}
	return c.JSON(s)
}
