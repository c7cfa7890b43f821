package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/profile"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
)

// RecruiterUseCase perfil propio del reclutador.
type RecruiterUseCase struct {
	recruiters repository.RecruiterRepository
	builder    *profile.Builder
	now        func() time.Time
}

// NewRecruiterUseCase construye el caso de uso con el puerto de persistencia.
func NewRecruiterUseCase(recruiters repository.RecruiterRepository, builder *profile.Builder) *RecruiterUseCase {
	if builder == nil {
		builder = profile.NewBuilder(nil)
	}
	return &RecruiterUseCase{recruiters: recruiters, builder: builder, now: time.Now}
}

// GetMine devuelve el perfil del usuario. ErrNotFound si aún no lo creó.
func (uc *RecruiterUseCase) GetMine(ctx context.Context, userID string) (*dto.RecruiterResponse, error) {
	r, err := uc.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToRecruiterResponse(r), nil
}

// UpdateMine reemplaza los campos editables del perfil propio (last write wins).
func (uc *RecruiterUseCase) UpdateMine(ctx context.Context, userID string, in dto.UpdateRecruiterRequest) (*dto.RecruiterResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	r, err := uc.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	uc.builder.Recruiter(r, in)
	r.UpdatedAt = uc.now()
	if err := uc.recruiters.Update(ctx, r); err != nil {
		return nil, err
	}
	return dto.ToRecruiterResponse(r), nil
}
