package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/testutil/memstore"
)

func TestAdminUseCase_ListUsersYOverview(t *testing.T) {
	store := memstore.New()
	now := time.Now()
	store.PutUser(&entity.User{ID: "u1", Role: entity.RoleUser, CreatedAt: now})
	store.PutUser(&entity.User{ID: "u2", Role: entity.RoleAthlete, CreatedAt: now.Add(time.Second)})
	store.PutUser(&entity.User{ID: "u3", Role: entity.RoleAthlete, CreatedAt: now.Add(2 * time.Second)})
	uc := usecase.NewAdminUseCase(store.Users(), zerolog.Nop())
	ctx := context.Background()

	all, err := uc.ListUsers(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
	assert.Equal(t, "u3", all.Items[0].ID)

	athletes, err := uc.ListUsers(ctx, "athlete", dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, athletes.Items, 1)

	_, err = uc.ListUsers(ctx, "coach", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	counts, err := uc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[entity.Role]int{
		entity.RoleUser:      1,
		entity.RoleAthlete:   2,
		entity.RoleRecruiter: 0,
		entity.RoleAdmin:     0,
	}, counts)
}

func TestAdminUseCase_UpdateRole(t *testing.T) {
	store := memstore.New()
	store.PutUser(&entity.User{ID: "u1", Role: entity.RoleUser})
	uc := usecase.NewAdminUseCase(store.Users(), zerolog.Nop())
	ctx := context.Background()

	resp, err := uc.UpdateRole(ctx, "u1", dto.UpdateRoleRequest{Role: "recruiter"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRecruiter, resp.Role)

	u, _ := store.Users().GetByID(ctx, "u1")
	assert.Equal(t, "RECRUITER", u.Metadata["role"])

	_, err = uc.UpdateRole(ctx, "u1", dto.UpdateRoleRequest{Role: "coach"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateRole(ctx, "nadie", dto.UpdateRoleRequest{Role: "ADMIN"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
