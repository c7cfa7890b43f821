// Package profile arma las entidades Athlete/Recruiter a partir de la entrada del usuario,
// aplicando sanitización y normalización de texto.
package profile

import (
	"strings"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/security"
)

// Builder copia los campos editables de un request a la entidad.
type Builder struct {
	sanitizer *security.TextSanitizer
}

// NewBuilder construye el builder.
func NewBuilder(s *security.TextSanitizer) *Builder {
	if s == nil {
		s = security.NewTextSanitizer()
	}
	return &Builder{sanitizer: s}
}

// Athlete aplica in sobre dst. No toca ID, UserID, Rating ni timestamps.
func (b *Builder) Athlete(dst *entity.Athlete, in dto.CreateAthleteRequest) {
	dst.Sport = NormalizeSport(in.Sport)
	dst.Position = b.sanitizer.Plain(in.Position)
	dst.GraduationYear = in.GraduationYear
	dst.School = b.sanitizer.Name(in.School)
	dst.City = b.sanitizer.Name(in.City)
	dst.Region = b.sanitizer.Name(in.Region)
	dst.HeightCm = in.HeightCm
	dst.WeightKg = in.WeightKg
	dst.Bio = b.sanitizer.Plain(in.Bio)
	dst.HighlightURL = strings.TrimSpace(in.HighlightURL)
}

// Recruiter aplica in sobre dst. No toca ID, UserID ni timestamps.
func (b *Builder) Recruiter(dst *entity.Recruiter, in dto.CreateRecruiterRequest) {
	dst.Organization = b.sanitizer.Name(in.Organization)
	dst.Title = b.sanitizer.Plain(in.Title)
	dst.Sport = NormalizeSport(in.Sport)
	dst.Division = b.sanitizer.Plain(in.Division)
	dst.Bio = b.sanitizer.Plain(in.Bio)
}

// Body limpia el cuerpo de un mensaje.
func (b *Builder) Body(in string) string {
	return b.sanitizer.Plain(in)
}

// NormalizeSport deja el deporte en minúsculas para que filtros y matches coincidan.
func NormalizeSport(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
