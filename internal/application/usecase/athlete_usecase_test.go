package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/testutil/memstore"
)

func seedAthlete(t *testing.T, store *memstore.Store, id, userID, sport, rating string, year int, created time.Time) {
	t.Helper()
	require.NoError(t, store.Athletes().Create(context.Background(), &entity.Athlete{
		ID:             id,
		UserID:         userID,
		Sport:          sport,
		GraduationYear: year,
		Rating:         decimal.RequireFromString(rating),
		CreatedAt:      created,
	}))
}

func TestAthleteUseCase_Rankings(t *testing.T) {
	store := memstore.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedAthlete(t, store, "a1", "u1", "soccer", "4.5", 2027, base)
	seedAthlete(t, store, "a2", "u2", "soccer", "4.5", 2028, base.Add(time.Hour))
	seedAthlete(t, store, "a3", "u3", "soccer", "4.9", 2027, base)
	seedAthlete(t, store, "a4", "u4", "basketball", "5", 2027, base)
	uc := usecase.NewAthleteUseCase(store.Athletes(), store.Recruiters(), nil)

	resp, err := uc.Rankings(context.Background(), dto.RankingsQuery{Sport: "SOCCER"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "a3", resp.Items[0].ID)
	assert.Equal(t, "a1", resp.Items[1].ID, "a igual rating gana el más antiguo")
	assert.Equal(t, 20, resp.Page.Limit)

	resp, err = uc.Rankings(context.Background(), dto.RankingsQuery{GraduationYear: 2027})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, "a4", resp.Items[0].ID)
}

func TestAthleteUseCase_Matches(t *testing.T) {
	store := memstore.New()
	seedAthlete(t, store, "a1", "u1", "soccer", "3", 2027, time.Now())
	seedAthlete(t, store, "a2", "u2", "tennis", "4", 2027, time.Now())
	require.NoError(t, store.Recruiters().Create(context.Background(), &entity.Recruiter{ID: "r1", UserID: "rec", Sport: "soccer"}))
	uc := usecase.NewAthleteUseCase(store.Athletes(), store.Recruiters(), nil)

	resp, err := uc.Matches(context.Background(), "rec", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "a1", resp.Items[0].ID)

	_, err = uc.Matches(context.Background(), "sin-perfil", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAthleteUseCase_GetYUpdateMine(t *testing.T) {
	store := memstore.New()
	seedAthlete(t, store, "a1", "u1", "soccer", "3", 2027, time.Now())
	uc := usecase.NewAthleteUseCase(store.Athletes(), store.Recruiters(), nil)
	ctx := context.Background()

	_, err := uc.GetMine(ctx, "otro")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	resp, err := uc.UpdateMine(ctx, "u1", dto.UpdateAthleteRequest{Sport: "Futsal", GraduationYear: 2028, City: "  cali  "})
	require.NoError(t, err)
	assert.Equal(t, "futsal", resp.Sport)
	assert.Equal(t, "Cali", resp.City)
	assert.True(t, decimal.NewFromInt(3).Equal(resp.Rating), "update no toca rating")

	got, err := uc.GetMine(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2028, got.GraduationYear)

	_, err = uc.UpdateMine(ctx, "u1", dto.UpdateAthleteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAthleteUseCase_Rate(t *testing.T) {
	store := memstore.New()
	seedAthlete(t, store, "a1", "u1", "soccer", "0", 2027, time.Now())
	uc := usecase.NewAthleteUseCase(store.Athletes(), store.Recruiters(), nil)
	ctx := context.Background()

	resp, err := uc.Rate(ctx, "a1", decimal.RequireFromString("4.256"))
	require.NoError(t, err)
	assert.Equal(t, "4.26", resp.Rating.StringFixed(2))

	for _, bad := range []string{"-0.01", "5.01"} {
		_, err := uc.Rate(ctx, "a1", decimal.RequireFromString(bad))
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr), bad)
	}

	_, err = uc.Rate(ctx, "nada", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
