package dto

import (
	"time"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UpdateAthleteRequest actualización del perfil propio (last write wins).
type UpdateAthleteRequest = CreateAthleteRequest

// AthleteResponse salida de un perfil de atleta.
type AthleteResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Sport          string          `json:"sport"`
	Position       string          `json:"position,omitempty"`
	GraduationYear int             `json:"graduation_year"`
	School         string          `json:"school,omitempty"`
	City           string          `json:"city,omitempty"`
	Region         string          `json:"region,omitempty"`
	HeightCm       int             `json:"height_cm,omitempty"`
	WeightKg       int             `json:"weight_kg,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	HighlightURL   string          `json:"highlight_url,omitempty"`
	Rating         decimal.Decimal `json:"rating"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AthleteListResponse ranking paginado de atletas.
type AthleteListResponse struct {
	Items []AthleteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// RankingsQuery filtros de /api/athletes.
type RankingsQuery struct {
	Sport          string `query:"sport"`
	GraduationYear int    `query:"graduation_year"`
	PageRequest
}

// UpdateRatingRequest calificación de un atleta por un administrador (0.00 – 5.00).
type UpdateRatingRequest struct {
	Rating decimal.Decimal `json:"rating"`
}

// ToAthleteResponse mapea la entidad a su salida pública.
func ToAthleteResponse(a *entity.Athlete) *AthleteResponse {
	if a == nil {
		return nil
	}
	return &AthleteResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		Sport:          a.Sport,
		Position:       a.Position,
		GraduationYear: a.GraduationYear,
		School:         a.School,
		City:           a.City,
		Region:         a.Region,
		HeightCm:       a.HeightCm,
		WeightKg:       a.WeightKg,
		Bio:            a.Bio,
		HighlightURL:   a.HighlightURL,
		Rating:         a.Rating,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAthleteList mapea una página de atletas.
func ToAthleteList(list []*entity.Athlete, limit, offset int) *AthleteListResponse {
	items := make([]AthleteResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *ToAthleteResponse(a))
	}
	return &AthleteListResponse{Items: items, Page: PageResponse{Limit: limit, Offset: offset}}
}
