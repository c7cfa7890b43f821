// Package onboarding decide si un usuario debe completar su perfil de dominio
// y ejecuta la selección de rol (alta de perfil + cambio de rol).
package onboarding

import (
	"context"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/metrics"
	"github.com/rs/zerolog"
)

// ProfileFinder consulta de existencia de un perfil de dominio por usuario.
type ProfileFinder interface {
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
}

// Service verificación de completitud de perfil.
type Service struct {
	athletes   ProfileFinder
	recruiters ProfileFinder
	metrics    metrics.Recorder
	log        zerolog.Logger
}

// NewService construye el servicio.
func NewService(athletes, recruiters ProfileFinder, rec metrics.Recorder, log zerolog.Logger) *Service {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{athletes: athletes, recruiters: recruiters, metrics: rec, log: log}
}

// NeedsOnboarding es true si la sesión tiene rol ATHLETE o RECRUITER y no existe
// el perfil correspondiente. Un error del store se registra y cuenta como
// "sin perfil": el usuario va a onboarding en lugar de fallar la petición.
func (s *Service) NeedsOnboarding(ctx context.Context, session *entity.Session) bool {
	if session == nil || !session.Role.HasProfile() {
		return false
	}
	exists, err := s.finderFor(session.Role).ExistsByUserID(ctx, session.ID)
	if err != nil {
		s.log.Error().Err(err).
			Str("user_id", session.ID).
			Str("role", string(session.Role)).
			Msg("verificar perfil de dominio; se asume ausente")
		s.metrics.RecordProfileLookupFailure()
		return true
	}
	return !exists
}

// State estado de alta del usuario:
// USER → UNASSIGNED; ATHLETE/RECRUITER sin perfil → ROLE_CHOSEN; con perfil → PROFILE_COMPLETE.
// ADMIN no tiene perfil de dominio y se reporta como PROFILE_COMPLETE.
func (s *Service) State(ctx context.Context, session *entity.Session) dto.OnboardingState {
	if session == nil || session.Role == entity.RoleUser {
		return dto.StateUnassigned
	}
	if s.NeedsOnboarding(ctx, session) {
		return dto.StateRoleChosen
	}
	return dto.StateProfileComplete
}

func (s *Service) finderFor(r entity.Role) ProfileFinder {
	if r == entity.RoleRecruiter {
		return s.recruiters
	}
	return s.athletes
}
