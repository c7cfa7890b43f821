package ports

import (
	"context"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// IdentityProvider puerto hacia el proveedor de autenticación.
// El núcleo lo trata como un servicio opaco: "dame el usuario actual" y "emite un token".
type IdentityProvider interface {
	// CurrentUser devuelve el usuario autenticado por token, o (nil, nil) si no hay sesión
	// válida (token vacío, inválido o expirado). error solo ante fallos del proveedor.
	CurrentUser(ctx context.Context, token string) (*entity.AuthUser, error)

	// IssueToken emite un token cuya metadata refleja el rol actual del usuario.
	// Se llama tras cada cambio de rol para refrescar la copia del proveedor.
	IssueToken(ctx context.Context, user *entity.User) (string, error)
}
