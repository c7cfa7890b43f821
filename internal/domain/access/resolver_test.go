package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/domain/access"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

func rawUser(md entity.AuthMetadata) *entity.AuthUser {
	return &entity.AuthUser{ID: "u1", Name: "Ana", Email: "ana@example.com", Metadata: md}
}

func TestResolveSession_SinUsuarioRetornaNil(t *testing.T) {
	assert.Nil(t, access.ResolveSession(nil, "ATHLETE"))
	assert.Nil(t, access.ResolveSession(&entity.AuthUser{}, "ATHLETE"), "un usuario sin id no es una sesión")
}

func TestResolveSession_RolDeMetadataSinDistinguirMayusculas(t *testing.T) {
	cases := map[string]entity.Role{
		"admin":     entity.RoleAdmin,
		"Athlete":   entity.RoleAthlete,
		"RECRUITER": entity.RoleRecruiter,
		" user ":    entity.RoleUser,
	}
	for in, want := range cases {
		s := access.ResolveSession(rawUser(entity.AuthMetadata{"role": in}), "")
		require.NotNil(t, s, in)
		assert.Equal(t, want, s.Role, in)
	}
}

func TestResolveSession_MetadataTienePrioridadSobreDB(t *testing.T) {
	s := access.ResolveSession(rawUser(entity.AuthMetadata{"role": "recruiter"}), "ATHLETE")
	require.NotNil(t, s)
	assert.Equal(t, entity.RoleRecruiter, s.Role)
}

func TestResolveSession_SinMetadataUsaRolDeDB(t *testing.T) {
	s := access.ResolveSession(rawUser(nil), "athlete")
	require.NotNil(t, s)
	assert.Equal(t, entity.RoleAthlete, s.Role)
	assert.True(t, access.NeedsStoredRole(rawUser(nil)))
	assert.False(t, access.NeedsStoredRole(rawUser(entity.AuthMetadata{"role": "ADMIN"})))
}

func TestResolveSession_RolDesconocidoOAusenteEsUSER(t *testing.T) {
	inputs := []entity.AuthMetadata{
		nil,
		{},
		{"role": "coach"},
		{"role": ""},
		{"role": 42},
	}
	for _, md := range inputs {
		s := access.ResolveSession(rawUser(md), "")
		require.NotNil(t, s)
		assert.Equal(t, entity.RoleUser, s.Role, "%v", md)
		assert.True(t, s.IsLoggedIn)
	}

	// Metadata con rol desconocido no cae al rol de DB.
	s := access.ResolveSession(rawUser(entity.AuthMetadata{"role": "coach"}), "ADMIN")
	assert.Equal(t, entity.RoleUser, s.Role)
}

func TestResolveSession_RolVacioUsaDBYCualquierOtroValorEsUSER(t *testing.T) {
	// vacíos: cuentan como ausentes y decide el rol de DB
	for _, v := range []any{nil, "", false, float64(0), 0} {
		md := entity.AuthMetadata{"role": v}
		s := access.ResolveSession(rawUser(md), "RECRUITER")
		require.NotNil(t, s)
		assert.Equal(t, entity.RoleRecruiter, s.Role, "%#v", v)
		assert.True(t, access.NeedsStoredRole(rawUser(md)), "%#v", v)
	}

	// presentes pero sin rol válido: USER, nunca el rol de DB
	for _, v := range []any{"   ", float64(42), true, []any{"ADMIN"}, map[string]any{"name": "ADMIN"}} {
		md := entity.AuthMetadata{"role": v}
		s := access.ResolveSession(rawUser(md), "ADMIN")
		require.NotNil(t, s)
		assert.Equal(t, entity.RoleUser, s.Role, "%#v", v)
		assert.False(t, access.NeedsStoredRole(rawUser(md)), "%#v", v)
	}
}

func TestResolveSession_PermisosDeMetadata(t *testing.T) {
	md := entity.AuthMetadata{
		"role":        "ATHLETE",
		"permissions": []any{"custom:one", "custom:two", "custom:one"},
	}
	s := access.ResolveSession(rawUser(md), "")
	require.NotNil(t, s)
	assert.Equal(t, []string{"custom:one", "custom:two"}, s.Permissions)
}

func TestResolveSession_PermisosInvalidosUsanTabla(t *testing.T) {
	inputs := []any{
		[]any{},
		[]string{" "},
		[]any{"ok", 3},
		"messages:read",
	}
	for _, perms := range inputs {
		s := access.ResolveSession(rawUser(entity.AuthMetadata{"role": "RECRUITER", "permissions": perms}), "")
		require.NotNil(t, s)
		assert.Equal(t, entity.PermissionsFor(entity.RoleRecruiter), s.Permissions, "%v", perms)
	}
}

func TestResolveSession_SesionCompleta(t *testing.T) {
	s := access.ResolveSession(rawUser(entity.AuthMetadata{"role": "ADMIN"}), "")
	require.NotNil(t, s)
	assert.Equal(t, "u1", s.ID)
	assert.Equal(t, "Ana", s.Name)
	assert.Equal(t, "ana@example.com", s.Email)
	assert.True(t, s.Can(entity.PermAdminAccess))
	assert.False(t, s.Can("nope"))
}
