package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/application/auth"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/identity"
	"github.com/jhoicas/scoutline-api/internal/testutil/memstore"
	"github.com/jhoicas/scoutline-api/pkg/config"
)

func newIdP() *identity.JWTProvider {
	return identity.NewJWTProvider(config.JWTConfig{Secret: "test-secret", Issuer: "scoutline-test", Expiration: 60})
}

func TestRegisterUser_CreaUsuarioConRolUSER(t *testing.T) {
	store := memstore.New()
	idp := newIdP()
	uc := auth.NewAuthUseCase(store.Users(), idp)

	resp, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Name:     " Ana Pérez ",
		Email:    " Ana@Example.com ",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.Equal(t, "Ana Pérez", resp.User.Name)
	assert.Equal(t, entity.RoleUser, resp.User.Role)

	raw, err := idp.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, "USER", raw.Metadata["role"])

	stored, err := store.Users().GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password se guarda hasheado")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	store := memstore.New()
	uc := auth.NewAuthUseCase(store.Users(), newIdP())
	in := dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"}

	_, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_Validacion(t *testing.T) {
	uc := auth.NewAuthUseCase(memstore.New().Users(), newIdP())
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Name: "Ana", Email: "no-es-email", Password: "corto"})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	store := memstore.New()
	uc := auth.NewAuthUseCase(store.Users(), newIdP())
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "otro-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
