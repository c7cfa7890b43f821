package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/profile"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var maxRating = decimal.NewFromInt(5)

// AthleteUseCase perfil propio del atleta, rankings y matches.
type AthleteUseCase struct {
	athletes   repository.AthleteRepository
	recruiters repository.RecruiterRepository
	builder    *profile.Builder
	now        func() time.Time
}

// NewAthleteUseCase construye el caso de uso con los puertos de persistencia.
func NewAthleteUseCase(athletes repository.AthleteRepository, recruiters repository.RecruiterRepository, builder *profile.Builder) *AthleteUseCase {
	if builder == nil {
		builder = profile.NewBuilder(nil)
	}
	return &AthleteUseCase{athletes: athletes, recruiters: recruiters, builder: builder, now: time.Now}
}

// GetMine devuelve el perfil del usuario. ErrNotFound si aún no lo creó.
func (uc *AthleteUseCase) GetMine(ctx context.Context, userID string) (*dto.AthleteResponse, error) {
	a, err := uc.athletes.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToAthleteResponse(a), nil
}

// UpdateMine reemplaza los campos editables del perfil propio (last write wins).
func (uc *AthleteUseCase) UpdateMine(ctx context.Context, userID string, in dto.UpdateAthleteRequest) (*dto.AthleteResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	a, err := uc.athletes.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	uc.builder.Athlete(a, in)
	a.UpdatedAt = uc.now()
	if err := uc.athletes.Update(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToAthleteResponse(a), nil
}

// GetByID obtiene un atleta por ID de perfil.
func (uc *AthleteUseCase) GetByID(ctx context.Context, id string) (*dto.AthleteResponse, error) {
	a, err := uc.athletes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToAthleteResponse(a), nil
}

// Rankings lista atletas por rating descendente con filtros opcionales.
func (uc *AthleteUseCase) Rankings(ctx context.Context, q dto.RankingsQuery) (*dto.AthleteListResponse, error) {
	q.DefaultPage()
	list, err := uc.athletes.Rankings(ctx, entity.AthleteFilter{
		Sport:          profile.NormalizeSport(q.Sport),
		GraduationYear: q.GraduationYear,
		Limit:          q.Limit,
		Offset:         q.Offset,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToAthleteList(list, q.Limit, q.Offset), nil
}

// Matches lista los atletas del deporte del reclutador, por rating.
func (uc *AthleteUseCase) Matches(ctx context.Context, recruiterUserID string, page dto.PageRequest) (*dto.AthleteListResponse, error) {
	r, err := uc.recruiters.GetByUserID(ctx, recruiterUserID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return uc.Rankings(ctx, dto.RankingsQuery{Sport: r.Sport, PageRequest: page})
}

// Rate fija el rating (0.00 – 5.00, redondeado a 2 decimales) de un atleta.
func (uc *AthleteUseCase) Rate(ctx context.Context, athleteID string, rating decimal.Decimal) (*dto.AthleteResponse, error) {
	if rating.IsNegative() || rating.GreaterThan(maxRating) {
		return nil, domain.NewValidationError("rating", "debe estar entre 0 y 5")
	}
	rating = rating.Round(2)
	a, err := uc.athletes.GetByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.athletes.UpdateRating(ctx, athleteID, rating); err != nil {
		return nil, err
	}
	a.Rating = rating
	return dto.ToAthleteResponse(a), nil
}
