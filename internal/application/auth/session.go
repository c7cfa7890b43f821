package auth

import (
	"context"

	"github.com/jhoicas/scoutline-api/internal/application/ports"
	"github.com/jhoicas/scoutline-api/internal/domain/access"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/metrics"
	"github.com/rs/zerolog"
)

// Resultados de resolución de sesión (métricas).
const (
	SessionAnonymous  = "anonymous"
	SessionResolved   = "resolved"
	SessionIdPError   = "idp_error"
	SessionStoreError = "store_error"
)

// storedRoleReader es lo único que la resolución necesita del repositorio de usuarios.
type storedRoleReader interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// SessionService obtiene la sesión de la petición: consulta al proveedor, trae el rol
// guardado solo si la metadata no lo tiene y delega la fusión en access.ResolveSession.
type SessionService struct {
	idp     ports.IdentityProvider
	users   storedRoleReader
	metrics metrics.Recorder
	log     zerolog.Logger
}

// NewSessionService construye el servicio de sesión.
func NewSessionService(idp ports.IdentityProvider, users storedRoleReader, rec metrics.Recorder, log zerolog.Logger) *SessionService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &SessionService{idp: idp, users: users, metrics: rec, log: log}
}

// Current devuelve la sesión del token o nil si no hay usuario autenticado.
// Los fallos del proveedor o del store se registran y se tratan como "sin sesión".
func (s *SessionService) Current(ctx context.Context, token string) *entity.Session {
	if token == "" {
		s.metrics.RecordSessionResolution(SessionAnonymous)
		return nil
	}
	raw, err := s.idp.CurrentUser(ctx, token)
	if err != nil {
		s.log.Error().Err(err).Msg("proveedor de identidad: usuario actual")
		s.metrics.RecordSessionResolution(SessionIdPError)
		return nil
	}
	if raw == nil {
		s.metrics.RecordSessionResolution(SessionAnonymous)
		return nil
	}

	var storedRole string
	if access.NeedsStoredRole(raw) {
		user, err := s.users.GetByID(ctx, raw.ID)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", raw.ID).Msg("leer rol guardado")
			s.metrics.RecordSessionResolution(SessionStoreError)
			return nil
		}
		if user != nil {
			storedRole = string(user.Role)
		}
	}

	s.metrics.RecordSessionResolution(SessionResolved)
	return access.ResolveSession(raw, storedRole)
}
