// Package identity implementa el proveedor de identidad sobre JWT firmados (HS256).
package identity

import (
	"context"
	"fmt"

	"github.com/jhoicas/scoutline-api/internal/application/ports"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/pkg/config"
	pkgjwt "github.com/jhoicas/scoutline-api/pkg/jwt"
)

var _ ports.IdentityProvider = (*JWTProvider)(nil)

// JWTProvider emite y lee tokens cuya metadata lleva el rol del usuario.
type JWTProvider struct {
	secret     string
	issuer     string
	expMinutes int
}

// NewJWTProvider construye el proveedor desde la configuración JWT.
func NewJWTProvider(cfg config.JWTConfig) *JWTProvider {
	return &JWTProvider{secret: cfg.Secret, issuer: cfg.Issuer, expMinutes: cfg.Expiration}
}

// CurrentUser devuelve el usuario del token o (nil, nil) si el token no es válido.
// Solo un secret vacío se reporta como error: es un fallo de configuración, no del cliente.
func (p *JWTProvider) CurrentUser(_ context.Context, token string) (*entity.AuthUser, error) {
	if p.secret == "" {
		return nil, fmt.Errorf("identity: secret JWT vacío")
	}
	if token == "" {
		return nil, nil
	}
	id, err := pkgjwt.Parse(p.secret, token)
	if err != nil {
		return nil, nil
	}
	return &entity.AuthUser{
		ID:       id.UserID,
		Name:     id.Name,
		Email:    id.Email,
		Metadata: entity.AuthMetadata(id.Metadata),
	}, nil
}

// IssueToken firma un token con la metadata actual del usuario.
func (p *JWTProvider) IssueToken(_ context.Context, user *entity.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("identity: usuario nil")
	}
	meta := user.Metadata
	if meta == nil {
		meta = entity.RoleMetadata(user.Role)
	}
	return pkgjwt.Generate(p.secret, p.issuer, p.expMinutes, pkgjwt.Identity{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Metadata: map[string]any(meta),
	})
}
