package dto

import (
	"time"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// UpdateRecruiterRequest actualización del perfil propio (last write wins).
type UpdateRecruiterRequest = CreateRecruiterRequest

// RecruiterResponse salida de un perfil de reclutador.
type RecruiterResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Organization string    `json:"organization"`
	Title        string    `json:"title,omitempty"`
	Sport        string    `json:"sport"`
	Division     string    `json:"division,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToRecruiterResponse mapea la entidad a su salida pública.
func ToRecruiterResponse(r *entity.Recruiter) *RecruiterResponse {
	if r == nil {
		return nil
	}
	return &RecruiterResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Organization: r.Organization,
		Title:        r.Title,
		Sport:        r.Sport,
		Division:     r.Division,
		Bio:          r.Bio,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
