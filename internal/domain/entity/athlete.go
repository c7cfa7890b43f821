package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Athlete perfil de dominio de un atleta. Uno a uno con User (UserID único).
type Athlete struct {
	ID             string
	UserID         string
	Sport          string
	Position       string
	GraduationYear int
	School         string
	City           string
	Region         string
	HeightCm       int
	WeightKg       int
	Bio            string
	HighlightURL   string
	Rating         decimal.Decimal // 0.00 – 5.00, asignado por administradores
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AthleteFilter filtros para el listado de rankings.
type AthleteFilter struct {
	Sport          string
	GraduationYear int
	Limit          int
	Offset         int
}
