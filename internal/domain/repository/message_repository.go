package repository

import (
	"context"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// MessageRepository define el puerto de persistencia para mensajes directos.
type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	GetByID(ctx context.Context, id string) (*entity.Message, error)
	// ListForUser lista el buzón (entity.MailboxInbox o entity.MailboxSent), más recientes primero.
	ListForUser(ctx context.Context, userID, mailbox string, limit, offset int) ([]*entity.Message, error)
	// MarkRead fija read_at si aún es NULL; repetirlo no cambia nada.
	MarkRead(ctx context.Context, id string) error
}
