package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
)

var _ repository.RecruiterRepository = (*RecruiterRepo)(nil)

const recruiterColumns = `id, user_id, organization, title, sport, division, bio, created_at, updated_at`

// RecruiterRepo implementación de RecruiterRepository sobre PostgreSQL (usable con pool o tx).
type RecruiterRepo struct {
	q Querier
}

// NewRecruiterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecruiterRepository(q Querier) *RecruiterRepo {
	return &RecruiterRepo{q: q}
}

// Create inserta el perfil. ErrProfileAlreadyExists si el usuario ya tiene uno.
func (r *RecruiterRepo) Create(ctx context.Context, rec *entity.Recruiter) error {
	query := `
		INSERT INTO recruiters (` + recruiterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.UserID, rec.Organization, rec.Title, rec.Sport, rec.Division, rec.Bio,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("insert recruiter: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de reclutador de un usuario.
func (r *RecruiterRepo) GetByUserID(ctx context.Context, userID string) (*entity.Recruiter, error) {
	var rec entity.Recruiter
	err := r.q.QueryRow(ctx, `SELECT `+recruiterColumns+` FROM recruiters WHERE user_id = $1`, userID).Scan(
		&rec.ID, &rec.UserID, &rec.Organization, &rec.Title, &rec.Sport, &rec.Division, &rec.Bio,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recruiter: %w", err)
	}
	return &rec, nil
}

// ExistsByUserID informa si el usuario tiene perfil de reclutador.
func (r *RecruiterRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recruiters WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("recruiter exists: %w", err)
	}
	return exists, nil
}

// Update actualiza los campos editables del perfil.
func (r *RecruiterRepo) Update(ctx context.Context, rec *entity.Recruiter) error {
	query := `
		UPDATE recruiters SET organization = $2, title = $3, sport = $4, division = $5, bio = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		rec.ID, rec.Organization, rec.Title, rec.Sport, rec.Division, rec.Bio, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recruiter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
