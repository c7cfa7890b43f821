package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/pkg/config"
)

// CookieConfig nombres y duración de las cookies que emite la API.
type CookieConfig struct {
	SessionName      string
	SessionTTL       time.Duration
	SelectedRoleName string
	SelectedRoleTTL  time.Duration
	Secure           bool
}

// NewCookieConfig arma CookieConfig desde la configuración de sesión y JWT.
func NewCookieConfig(s config.SessionConfig, j config.JWTConfig) CookieConfig {
	return CookieConfig{
		SessionName:      s.CookieName,
		SessionTTL:       time.Duration(j.Expiration) * time.Minute,
		SelectedRoleName: s.SelectedRoleCookieName,
		SelectedRoleTTL:  time.Duration(s.SelectedRoleTTLMinutes) * time.Minute,
		Secure:           s.Secure,
	}
}

func (cc CookieConfig) setSession(c *fiber.Ctx, token string) {
	c.Cookie(cc.cookie(cc.SessionName, token, cc.SessionTTL))
}

func (cc CookieConfig) clearSession(c *fiber.Ctx) {
	c.Cookie(cc.expired(cc.SessionName))
}

// setSelectedRole guarda la pista de rol elegido antes de crear el perfil. No da autoridad:
// el rol efectivo siempre sale de la sesión.
func (cc CookieConfig) setSelectedRole(c *fiber.Ctx, segment string) {
	c.Cookie(cc.cookie(cc.SelectedRoleName, segment, cc.SelectedRoleTTL))
}

func (cc CookieConfig) clearSelectedRole(c *fiber.Ctx) {
	c.Cookie(cc.expired(cc.SelectedRoleName))
}

func (cc CookieConfig) cookie(name, value string, ttl time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (cc CookieConfig) expired(name string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
