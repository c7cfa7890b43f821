package repository

import (
	"context"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// RecruiterRepository define el puerto de persistencia para perfiles de reclutador.
type RecruiterRepository interface {
	// Create inserta el perfil. ErrProfileAlreadyExists si el usuario ya tiene uno.
	Create(ctx context.Context, r *entity.Recruiter) error
	GetByUserID(ctx context.Context, userID string) (*entity.Recruiter, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	Update(ctx context.Context, r *entity.Recruiter) error
}
