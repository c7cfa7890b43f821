package onboarding

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/ports"
	"github.com/jhoicas/scoutline-api/internal/application/profile"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/access"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
	"github.com/jhoicas/scoutline-api/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn con repositorios atados a una única transacción que serializa
// las selecciones del mismo userID. Commit si fn devuelve nil; rollback en cualquier otro caso.
type TxRunner interface {
	RunRoleSelection(ctx context.Context, userID string, fn func(
		users repository.UserRepository,
		athletes repository.AthleteRepository,
		recruiters repository.RecruiterRepository,
	) error) error
}

// Resultados de selección de rol (métricas).
const (
	ResultCreated   = "created"
	ResultConflict  = "conflict"
	ResultInvalid   = "invalid"
	ResultForbidden = "forbidden"
	ResultError     = "error"
)

// RoleSelectionUseCase alta de perfil de dominio y cambio de rol del usuario.
type RoleSelectionUseCase struct {
	tx      TxRunner
	idp     ports.IdentityProvider
	builder *profile.Builder
	metrics metrics.Recorder
	log     zerolog.Logger
	now     func() time.Time
}

// NewRoleSelectionUseCase construye el caso de uso.
func NewRoleSelectionUseCase(tx TxRunner, idp ports.IdentityProvider, builder *profile.Builder, rec metrics.Recorder, log zerolog.Logger) *RoleSelectionUseCase {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if builder == nil {
		builder = profile.NewBuilder(nil)
	}
	return &RoleSelectionUseCase{tx: tx, idp: idp, builder: builder, metrics: rec, log: log, now: time.Now}
}

// SelectAthlete crea el perfil de atleta del usuario de la sesión y fija su rol en ATHLETE.
func (uc *RoleSelectionUseCase) SelectAthlete(ctx context.Context, session *entity.Session, in dto.CreateAthleteRequest) (*dto.RoleSelectionResponse, error) {
	if err := uc.guard(session, entity.RoleAthlete); err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		uc.metrics.RecordRoleSelection(string(entity.RoleAthlete), ResultInvalid)
		return nil, err
	}
	now := uc.now()
	athlete := &entity.Athlete{
		ID:        uuid.New().String(),
		Rating:    decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	uc.builder.Athlete(athlete, in)

	resp, err := uc.selectRole(ctx, session, entity.RoleAthlete, func(ctx context.Context, userID string, athletes repository.AthleteRepository, _ repository.RecruiterRepository) error {
		athlete.UserID = userID
		return athletes.Create(ctx, athlete)
	})
	if err != nil {
		return nil, err
	}
	resp.Profile = dto.ToAthleteResponse(athlete)
	return resp, nil
}

// SelectRecruiter crea el perfil de reclutador del usuario de la sesión y fija su rol en RECRUITER.
func (uc *RoleSelectionUseCase) SelectRecruiter(ctx context.Context, session *entity.Session, in dto.CreateRecruiterRequest) (*dto.RoleSelectionResponse, error) {
	if err := uc.guard(session, entity.RoleRecruiter); err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		uc.metrics.RecordRoleSelection(string(entity.RoleRecruiter), ResultInvalid)
		return nil, err
	}
	now := uc.now()
	recruiter := &entity.Recruiter{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	uc.builder.Recruiter(recruiter, in)

	resp, err := uc.selectRole(ctx, session, entity.RoleRecruiter, func(ctx context.Context, userID string, _ repository.AthleteRepository, recruiters repository.RecruiterRepository) error {
		recruiter.UserID = userID
		return recruiters.Create(ctx, recruiter)
	})
	if err != nil {
		return nil, err
	}
	resp.Profile = dto.ToRecruiterResponse(recruiter)
	return resp, nil
}

type createProfileFunc func(ctx context.Context, userID string, athletes repository.AthleteRepository, recruiters repository.RecruiterRepository) error

// guard exige sesión y rechaza ADMIN, que no tiene perfil de dominio.
func (uc *RoleSelectionUseCase) guard(session *entity.Session, role entity.Role) error {
	if session == nil {
		return domain.ErrUnauthorized
	}
	if session.Role == entity.RoleAdmin {
		uc.metrics.RecordRoleSelection(string(role), ResultForbidden)
		return domain.ErrForbidden
	}
	return nil
}

// selectRole comparte el flujo de ambos endpoints:
//  1. en una transacción: rechaza si ya hay perfil de cualquier tipo, crea el perfil y actualiza users.role
//  2. re-emite el token para que la metadata del proveedor refleje el nuevo rol
func (uc *RoleSelectionUseCase) selectRole(ctx context.Context, session *entity.Session, role entity.Role, create createProfileFunc) (*dto.RoleSelectionResponse, error) {
	roleLabel := string(role)

	var user *entity.User
	err := uc.tx.RunRoleSelection(ctx, session.ID, func(users repository.UserRepository, athletes repository.AthleteRepository, recruiters repository.RecruiterRepository) error {
		hasAthlete, err := athletes.ExistsByUserID(ctx, session.ID)
		if err != nil {
			return err
		}
		hasRecruiter, err := recruiters.ExistsByUserID(ctx, session.ID)
		if err != nil {
			return err
		}
		if hasAthlete || hasRecruiter {
			return domain.ErrProfileAlreadyExists
		}

		u, err := users.GetByID(ctx, session.ID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}

		if err := create(ctx, session.ID, athletes, recruiters); err != nil {
			return err
		}
		u.Role = role
		u.Metadata = entity.RoleMetadata(role)
		if err := users.UpdateRole(ctx, u.ID, u.Role, u.Metadata); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		result := ResultError
		if errors.Is(err, domain.ErrProfileAlreadyExists) {
			result = ResultConflict
		}
		uc.metrics.RecordRoleSelection(roleLabel, result)
		return nil, err
	}

	// Perfil y rol ya están guardados: si falla la re-emisión se responde éxito sin
	// token y el próximo login emite uno con el rol nuevo.
	token, err := uc.idp.IssueToken(ctx, user)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("re-emitir token tras selección de rol")
		token = ""
	}

	uc.metrics.RecordRoleSelection(roleLabel, ResultCreated)
	uc.log.Info().Str("user_id", user.ID).Str("role", roleLabel).Msg("rol seleccionado")
	return &dto.RoleSelectionResponse{
		Role:       role,
		RedirectTo: access.RoleHomePath(role),
		Token:      token,
	}, nil
}
