package repository

import (
	"context"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AthleteRepository define el puerto de persistencia para perfiles de atleta.
type AthleteRepository interface {
	// Create inserta el perfil. ErrProfileAlreadyExists si el usuario ya tiene uno.
	Create(ctx context.Context, a *entity.Athlete) error
	GetByID(ctx context.Context, id string) (*entity.Athlete, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Athlete, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	Update(ctx context.Context, a *entity.Athlete) error
	UpdateRating(ctx context.Context, id string, rating decimal.Decimal) error
	// Rankings lista atletas ordenados por rating descendente.
	Rankings(ctx context.Context, f entity.AthleteFilter) ([]*entity.Athlete, error)
}
