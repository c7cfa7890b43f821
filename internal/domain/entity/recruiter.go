package entity

import "time"

// Recruiter perfil de dominio de un reclutador. Uno a uno con User (UserID único).
type Recruiter struct {
	ID           string
	UserID       string
	Organization string
	Title        string
	Sport        string
	Division     string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
