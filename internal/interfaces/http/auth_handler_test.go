package http_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegistroLoginYSesion(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, fiber.MethodPost, "/api/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"supersecreta"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	tok, ok := cookieValue(resp, "scoutline_session")
	require.True(t, ok)
	require.NotEmpty(t, tok)

	resp = env.do(t, fiber.MethodGet, "/api/auth/session", "", withCookie("scoutline_session", tok))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	s := decode(t, resp)
	assert.Equal(t, true, s["isLoggedIn"])
	assert.Equal(t, "USER", s["role"])

	resp = env.do(t, fiber.MethodPost, "/api/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"supersecreta"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decode(t, resp)["code"])

	resp = env.do(t, fiber.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"otra-cosa"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"supersecreta"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decode(t, resp)["token"])
}

func TestAuth_SesionAnonima(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, fiber.MethodGet, "/api/auth/session", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decode(t, resp)["isLoggedIn"])
}

func TestAuth_LogoutLimpiaCookies(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, fiber.MethodPost, "/api/auth/logout", "", withBearer(env.tokenFor(t, athleteID)))
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	v, ok := cookieValue(resp, "scoutline_session")
	assert.True(t, ok)
	assert.Empty(t, v)
	_, ok = cookieValue(resp, "selected_role")
	assert.True(t, ok)
}

func TestAuth_BearerTienePrioridadSobreCookie(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, fiber.MethodGet, "/api/auth/session", "",
		withBearer(env.tokenFor(t, recruiterID)),
		withCookie("scoutline_session", env.tokenFor(t, athleteID)))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "RECRUITER", decode(t, resp)["role"])
}

func TestUsers_MeDevuelveRolGuardado(t *testing.T) {
	env := newTestEnv(t, 0)
	tok := env.tokenFor(t, plainUserID)

	resp := env.do(t, fiber.MethodPut, "/api/admin/users/"+plainUserID+"/role", `{"role":"ATHLETE"}`,
		withBearer(env.tokenFor(t, adminID)))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// el token viejo sigue diciendo USER; /users/me refleja lo guardado
	resp = env.do(t, fiber.MethodGet, "/api/users/me", "", withBearer(tok))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ATHLETE", decode(t, resp)["role"])

	resp = env.do(t, fiber.MethodGet, "/api/users/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
