package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbebidas_ParesUpDown(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups, downs := 0, 0
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups++
		case strings.HasSuffix(f, ".down.sql"):
			downs++
		default:
			t.Errorf("archivo de migración sin sufijo up/down: %s", f)
		}
	}
	assert.Equal(t, ups, downs, "cada migración up debe tener su down")
}

func TestMigrationsEmbebidas_FuenteIOFS(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

func TestMigrationsEmbebidas_PerfilUnicoPorUsuario(t *testing.T) {
	b, err := migrationsFS.ReadFile("migrations/000002_profiles.up.sql")
	require.NoError(t, err)
	sql := string(b)
	assert.Contains(t, sql, "athletes_user_id_key UNIQUE (user_id)")
	assert.Contains(t, sql, "recruiters_user_id_key UNIQUE (user_id)")
}
