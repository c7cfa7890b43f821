package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AthleteRepository = (*AthleteRepo)(nil)

const athleteColumns = `id, user_id, sport, position, graduation_year, school, city, region,
	height_cm, weight_kg, bio, highlight_url, rating, created_at, updated_at`

// AthleteRepo implementación de AthleteRepository sobre PostgreSQL (usable con pool o tx).
type AthleteRepo struct {
	q Querier
}

// NewAthleteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAthleteRepository(q Querier) *AthleteRepo {
	return &AthleteRepo{q: q}
}

// Create inserta el perfil. El UNIQUE(user_id) cubre la carrera entre dos altas simultáneas.
func (r *AthleteRepo) Create(ctx context.Context, a *entity.Athlete) error {
	query := `
		INSERT INTO athletes (` + athleteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.UserID, a.Sport, a.Position, a.GraduationYear, a.School, a.City, a.Region,
		a.HeightCm, a.WeightKg, a.Bio, a.HighlightURL, a.Rating, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("insert athlete: %w", err)
	}
	return nil
}

// GetByID obtiene un atleta por ID de perfil.
func (r *AthleteRepo) GetByID(ctx context.Context, id string) (*entity.Athlete, error) {
	return r.getOne(ctx, `SELECT `+athleteColumns+` FROM athletes WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil de atleta de un usuario.
func (r *AthleteRepo) GetByUserID(ctx context.Context, userID string) (*entity.Athlete, error) {
	return r.getOne(ctx, `SELECT `+athleteColumns+` FROM athletes WHERE user_id = $1`, userID)
}

func (r *AthleteRepo) getOne(ctx context.Context, query, arg string) (*entity.Athlete, error) {
	a, err := scanAthlete(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get athlete: %w", err)
	}
	return a, nil
}

// ExistsByUserID informa si el usuario tiene perfil de atleta.
func (r *AthleteRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM athletes WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("athlete exists: %w", err)
	}
	return exists, nil
}

// Update actualiza los campos editables del perfil (no toca rating).
func (r *AthleteRepo) Update(ctx context.Context, a *entity.Athlete) error {
	query := `
		UPDATE athletes SET sport = $2, position = $3, graduation_year = $4, school = $5, city = $6,
			region = $7, height_cm = $8, weight_kg = $9, bio = $10, highlight_url = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.Sport, a.Position, a.GraduationYear, a.School, a.City,
		a.Region, a.HeightCm, a.WeightKg, a.Bio, a.HighlightURL, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update athlete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateRating fija el rating de un atleta.
func (r *AthleteRepo) UpdateRating(ctx context.Context, id string, rating decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE athletes SET rating = $2, updated_at = NOW() WHERE id = $1`, id, rating)
	if err != nil {
		return fmt.Errorf("update athlete rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Rankings lista atletas por rating descendente; a igual rating, el perfil más antiguo primero.
func (r *AthleteRepo) Rankings(ctx context.Context, f entity.AthleteFilter) ([]*entity.Athlete, error) {
	query := `
		SELECT ` + athleteColumns + `
		FROM athletes
		WHERE ($1 = '' OR sport = $1)
		  AND ($2 = 0 OR graduation_year = $2)
		ORDER BY rating DESC, created_at ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Sport, f.GraduationYear, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("athlete rankings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, fmt.Errorf("scan athlete: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAthlete(row pgxScanner) (*entity.Athlete, error) {
	var a entity.Athlete
	err := row.Scan(
		&a.ID, &a.UserID, &a.Sport, &a.Position, &a.GraduationYear, &a.School, &a.City, &a.Region,
		&a.HeightCm, &a.WeightKg, &a.Bio, &a.HighlightURL, &a.Rating, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
