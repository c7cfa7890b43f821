package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// LocalSession key de c.Locals con la *entity.Session de la petición (nil si anónima).
const LocalSession = "session"

// sessionResolver lo implementa *auth.SessionService.
type sessionResolver interface {
	Current(ctx context.Context, token string) *entity.Session
}

// SessionMiddleware resuelve la sesión una vez por petición desde la cookie de sesión
// o el header Authorization: Bearer. Nunca corta la petición: sin token o con token
// inválido la sesión queda nil y deciden el gate o RequireSession.
func SessionMiddleware(resolver sessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var session *entity.Session
		if token := tokenFromRequest(c, cookieName); token != "" {
			session = resolver.Current(c.UserContext(), token)
		}
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

// tokenFromRequest prefiere el Bearer explícito sobre la cookie.
func tokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(cookieName)
}

// GetSession devuelve la sesión de la petición (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// GetUserID devuelve el ID del usuario de la sesión o "".
func GetUserID(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.ID
	}
	return ""
}

// GetRole devuelve el rol de la sesión o "".
func GetRole(c *fiber.Ctx) entity.Role {
	if s := GetSession(c); s != nil {
		return s.Role
	}
	return ""
}
