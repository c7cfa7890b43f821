package http_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

func TestRouteGate_Redirige(t *testing.T) {
	env := newTestEnv(t, 0)
	athlete := env.tokenFor(t, athleteID)
	recruiter := env.tokenFor(t, recruiterID)
	user := env.tokenFor(t, plainUserID)

	cases := []struct {
		name     string
		path     string
		token    string
		location string
	}{
		{"sin sesión a dashboard", "/dashboard/athlete", "", "/"},
		{"sin sesión a admin", "/admin", "", "/"},
		{"sin sesión a onboarding", "/onboarding", "", "/"},
		{"atleta a dashboard ajeno", "/dashboard/recruiter", athlete, "/dashboard/athlete"},
		{"reclutador a subruta ajena", "/dashboard/athlete/stats", recruiter, "/dashboard/recruiter"},
		{"no admin a admin", "/admin/users", athlete, "/"},
		{"dashboard raíz al del rol", "/dashboard", recruiter, "/dashboard/recruiter"},
		{"usuario sin rol a dashboard ajeno", "/dashboard/athlete", user, "/dashboard/user"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []reqOpt
			if tc.token != "" {
				opts = append(opts, withBearer(tc.token))
			}
			resp := env.do(t, fiber.MethodGet, tc.path, "", opts...)
			assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, tc.location, resp.Header.Get(fiber.HeaderLocation))
		})
	}
}

func TestRouteGate_Permite(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, fiber.MethodGet, "/dashboard/athlete", "", withBearer(env.tokenFor(t, athleteID)))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "PROFILE_COMPLETE", body["state"])

	resp = env.do(t, fiber.MethodGet, "/admin/anything", "", withBearer(env.tokenFor(t, adminID)))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	counts := decode(t, resp)["users_by_role"].(map[string]any)
	assert.EqualValues(t, 1, counts["ATHLETE"])

	resp = env.do(t, fiber.MethodGet, "/", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouteGate_AdminSoloVeSuDashboard(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, fiber.MethodGet, "/dashboard/athlete", "", withBearer(env.tokenFor(t, adminID)))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/admin", resp.Header.Get(fiber.HeaderLocation))

	resp = env.do(t, fiber.MethodGet, "/dashboard/admin", "", withBearer(env.tokenFor(t, adminID)))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouteGate_RolSinPerfilVaAOnboarding(t *testing.T) {
	env := newTestEnv(t, 0)
	u, err := env.store.Users().GetByID(context.Background(), plainUserID)
	require.NoError(t, err)
	u.Role = entity.RoleAthlete
	u.Metadata = entity.RoleMetadata(entity.RoleAthlete)
	env.store.PutUser(u)

	resp := env.do(t, fiber.MethodGet, "/dashboard/athlete", "", withBearer(env.tokenFor(t, plainUserID)))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/onboarding/athlete", resp.Header.Get(fiber.HeaderLocation))

	// el propio formulario no se redirige
	resp = env.do(t, fiber.MethodGet, "/onboarding/athlete", "", withBearer(env.tokenFor(t, plainUserID)))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouteGate_SesionDesdeCookie(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, fiber.MethodGet, "/dashboard/recruiter", "",
		withCookie("scoutline_session", env.tokenFor(t, recruiterID)))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// token basura: se trata como sin sesión
	resp = env.do(t, fiber.MethodGet, "/dashboard/recruiter", "", withCookie("scoutline_session", "basura"))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestRouteGate_RutaConMayusculasNoEvitaElGate(t *testing.T) {
	env := newTestEnv(t, 0)
	athlete := env.tokenFor(t, athleteID)

	cases := []struct {
		name     string
		path     string
		token    string
		location string
	}{
		{"sin sesión a ADMIN", "/ADMIN", "", "/"},
		{"sin sesión a Admin/users", "/Admin/users", "", "/"},
		{"sin sesión a DASHBOARD", "/DASHBOARD/athlete", "", "/"},
		{"sin sesión a Onboarding/Athlete", "/Onboarding/Athlete", "", "/"},
		{"atleta a dashboard ajeno en mayúsculas", "/Dashboard/Recruiter", athlete, "/dashboard/athlete"},
		{"atleta a ADMIN", "/ADMIN", athlete, "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []reqOpt
			if tc.token != "" {
				opts = append(opts, withBearer(tc.token))
			}
			resp := env.do(t, fiber.MethodGet, tc.path, "", opts...)
			assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, tc.location, resp.Header.Get(fiber.HeaderLocation))
		})
	}

	// el admin sigue entrando con la ruta en mayúsculas
	resp := env.do(t, fiber.MethodGet, "/ADMIN", "", withBearer(env.tokenFor(t, adminID)))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
