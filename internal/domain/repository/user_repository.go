package repository

import (
	"context"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get*/Find* devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateRole cambia el rol guardado y la copia de metadata. ErrUserNotFound si no existe.
	UpdateRole(ctx context.Context, id string, role entity.Role, metadata entity.AuthMetadata) error
	List(ctx context.Context, role entity.Role, limit, offset int) ([]*entity.User, error)
	CountByRole(ctx context.Context) (map[entity.Role]int, error)
}
