package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// AdminUseCase administración de usuarios y roles.
type AdminUseCase struct {
	users repository.UserRepository
	log   zerolog.Logger
	now   func() time.Time
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(users repository.UserRepository, log zerolog.Logger) *AdminUseCase {
	return &AdminUseCase{users: users, log: log, now: time.Now}
}

// ListUsers lista usuarios, opcionalmente filtrados por rol.
func (uc *AdminUseCase) ListUsers(ctx context.Context, roleFilter string, page dto.PageRequest) (*dto.UserListResponse, error) {
	var role entity.Role
	if roleFilter != "" {
		r, ok := entity.ParseRole(roleFilter)
		if !ok {
			return nil, domain.NewValidationError("role", "rol desconocido")
		}
		role = r
	}
	page.DefaultPage()
	list, err := uc.users.List(ctx, role, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// UpdateRole cambia el rol guardado del usuario y su copia de metadata.
// No crea perfiles: un ATHLETE/RECRUITER asignado así queda en ROLE_CHOSEN hasta completar onboarding.
// La metadata del token del usuario se actualiza en su próximo login.
func (uc *AdminUseCase) UpdateRole(ctx context.Context, userID string, in dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role, _ := entity.ParseRole(in.Role)

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.users.UpdateRole(ctx, u.ID, role, entity.RoleMetadata(role)); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", u.ID).Str("from", string(u.Role)).Str("to", string(role)).Msg("rol actualizado por admin")
	u.Role = role
	u.Metadata = entity.RoleMetadata(role)
	u.UpdatedAt = uc.now()
	return dto.ToUserResponse(u), nil
}

// Overview cuenta usuarios por rol; todos los roles aparecen aunque tengan cero.
func (uc *AdminUseCase) Overview(ctx context.Context) (map[entity.Role]int, error) {
	counts, err := uc.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[entity.Role]int, len(entity.Roles()))
	for _, r := range entity.Roles() {
		out[r] = counts[r]
	}
	return out, nil
}
