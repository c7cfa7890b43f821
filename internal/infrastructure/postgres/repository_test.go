package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/postgres"
	"github.com/jhoicas/scoutline-api/pkg/config"
)

// setupDB conecta a TEST_DATABASE_URL, migra desde cero y limpia las tablas.
// Sin base de datos de pruebas el test se omite.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	require.NoError(t, postgres.MigrateDown(url, 0))
	require.NoError(t, postgres.MigrateUp(url))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func newUser(t *testing.T, repo *postgres.UserRepo, role entity.Role) *entity.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Test",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Metadata:     entity.RoleMetadata(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func newAthlete(userID, sport string, rating string, created time.Time) *entity.Athlete {
	return &entity.Athlete{
		ID:             uuid.New().String(),
		UserID:         userID,
		Sport:          sport,
		GraduationYear: 2027,
		Rating:         decimal.RequireFromString(rating),
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func TestUserRepo_MetadataYRol(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)

	u := newUser(t, users, entity.RoleUser)
	dup := *u
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, users.Create(ctx, &dup), domain.ErrEmailAlreadyExists)

	require.NoError(t, users.UpdateRole(ctx, u.ID, entity.RoleAthlete, entity.RoleMetadata(entity.RoleAthlete)))
	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAthlete, got.Role)
	assert.Equal(t, "ATHLETE", got.Metadata["role"])

	assert.ErrorIs(t, users.UpdateRole(ctx, uuid.New().String(), entity.RoleUser, nil), domain.ErrUserNotFound)

	missing, err := users.GetByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	counts, err := users.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[entity.RoleAthlete])
}

func TestAthleteRepo_RankingsOrdenYFiltros(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	athletes := postgres.NewAthleteRepository(pool)

	base := time.Now().UTC().Truncate(time.Millisecond)
	a1 := newAthlete(newUser(t, users, entity.RoleAthlete).ID, "soccer", "4.50", base)
	a2 := newAthlete(newUser(t, users, entity.RoleAthlete).ID, "soccer", "4.50", base.Add(time.Minute))
	a3 := newAthlete(newUser(t, users, entity.RoleAthlete).ID, "soccer", "4.90", base)
	a4 := newAthlete(newUser(t, users, entity.RoleAthlete).ID, "basketball", "5.00", base)
	for _, a := range []*entity.Athlete{a1, a2, a3, a4} {
		require.NoError(t, athletes.Create(ctx, a))
	}

	list, err := athletes.Rankings(ctx, entity.AthleteFilter{Sport: "soccer", Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{a3.ID, a1.ID, a2.ID}, []string{list[0].ID, list[1].ID, list[2].ID})

	all, err := athletes.Rankings(ctx, entity.AthleteFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, a4.ID, all[0].ID)
}

func TestTxRunner_RollbackYPerfilUnico(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	athletes := postgres.NewAthleteRepository(pool)
	tx := postgres.NewTxRunner(pool)

	u := newUser(t, users, entity.RoleUser)

	// Error dentro de fn: nada se guarda.
	err := tx.RunRoleSelection(ctx, u.ID, func(ur repository.UserRepository, ar repository.AthleteRepository, _ repository.RecruiterRepository) error {
		require.NoError(t, ar.Create(ctx, newAthlete(u.ID, "soccer", "0", time.Now())))
		return domain.ErrConflict
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	exists, err := athletes.ExistsByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, athletes.Create(ctx, newAthlete(u.ID, "soccer", "0", time.Now())))
	assert.ErrorIs(t, athletes.Create(ctx, newAthlete(u.ID, "soccer", "0", time.Now())), domain.ErrProfileAlreadyExists)
}

func TestMessageRepo_BuzonesYLectura(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	messages := postgres.NewMessageRepository(pool)

	from := newUser(t, users, entity.RoleRecruiter)
	to := newUser(t, users, entity.RoleAthlete)
	m := &entity.Message{ID: uuid.New().String(), SenderID: from.ID, RecipientID: to.ID, Body: "hola", CreatedAt: time.Now()}
	require.NoError(t, messages.Create(ctx, m))

	inbox, err := messages.ListForUser(ctx, to.ID, entity.MailboxInbox, 10, 0)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
	sent, err := messages.ListForUser(ctx, to.ID, entity.MailboxSent, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, sent)

	require.NoError(t, messages.MarkRead(ctx, m.ID))
	first, err := messages.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, first.ReadAt)

	require.NoError(t, messages.MarkRead(ctx, m.ID))
	second, err := messages.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, first.ReadAt.Equal(*second.ReadAt), "marcar dos veces no cambia read_at")
}

func TestRepos_IDMalFormadoEsNoEncontrado(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	u, err := postgres.NewUserRepository(pool).GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, u)

	a, err := postgres.NewAthleteRepository(pool).GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, a)

	m, err := postgres.NewMessageRepository(pool).GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, m)
}
