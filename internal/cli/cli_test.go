package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/identity"
	"github.com/jhoicas/scoutline-api/pkg/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func issue(t *testing.T, secret string, u *entity.User) string {
	t.Helper()
	tok, err := identity.NewJWTProvider(config.JWTConfig{Secret: secret, Issuer: "scoutline", Expiration: 5}).
		IssueToken(context.Background(), u)
	require.NoError(t, err)
	return tok
}

func TestArbolDeComandos(t *testing.T) {
	root := NewRootCmd()
	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "version"},
		{"users", "list"},
		{"users", "set-role"},
		{"session", "inspect"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	list, _, _ := root.Find([]string{"users", "list"})
	assert.NotNil(t, list.Flags().Lookup("role"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestSessionInspect_ResuelveSesion(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	tok := issue(t, "cli-secret", &entity.User{
		ID: "u1", Name: "Ana", Email: "ana@example.com",
		Role: entity.RoleRecruiter, Metadata: entity.RoleMetadata(entity.RoleRecruiter),
	})

	out, err := run(t, "session", "inspect", tok)
	require.NoError(t, err)

	var report struct {
		Valid   bool           `json:"valid"`
		Home    string         `json:"home"`
		Session entity.Session `json:"session"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Valid)
	assert.Equal(t, entity.RoleRecruiter, report.Session.Role)
	assert.Equal(t, "/dashboard/recruiter", report.Home)
}

func TestSessionInspect_SinRolEnMetadataUsaRolGuardado(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	tok := issue(t, "cli-secret", &entity.User{ID: "u2", Email: "b@example.com", Metadata: entity.AuthMetadata{}})

	out, err := run(t, "session", "inspect", "--stored-role", "athlete", "-o", "yaml", tok)
	require.NoError(t, err)
	assert.Contains(t, out, "needs_stored_role: true")
	assert.Contains(t, out, "role: ATHLETE")
	assert.Contains(t, out, "home: /dashboard/athlete")
}

func TestSessionInspect_TokenInvalido(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := run(t, "session", "inspect", "no-es-un-token")
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": false`)
}

func TestSessionInspect_FormatoDesconocido(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	tok := issue(t, "cli-secret", &entity.User{ID: "u3", Role: entity.RoleUser})

	_, err := run(t, "session", "inspect", "-o", "xml", tok)
	assert.Error(t, err)
}

func TestMigrateDown_PasosInvalidos(t *testing.T) {
	_, err := run(t, "migrate", "down", "-2")
	assert.Error(t, err)
}
