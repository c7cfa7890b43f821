package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/ports"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	idp      ports.IdentityProvider
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, idp ports.IdentityProvider) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, idp: idp, now: time.Now}
}

// RegisterUser crea un usuario con rol USER, hashea el password con bcrypt, persiste y emite token.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Metadata:     entity.RoleMetadata(entity.RoleUser),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.loginResponse(ctx, user)
}

// Login verifica email/password, emite el token y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return uc.loginResponse(ctx, user)
}

func (uc *AuthUseCase) loginResponse(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	token, err := uc.idp.IssueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(user)}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
