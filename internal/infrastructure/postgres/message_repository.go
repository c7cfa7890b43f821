package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

const messageColumns = `id, sender_id, recipient_id, body, read_at, created_at`

// MessageRepo implementación de MessageRepository sobre PostgreSQL.
type MessageRepo struct {
	q Querier
}

// NewMessageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// Create persiste un mensaje.
func (r *MessageRepo) Create(ctx context.Context, m *entity.Message) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO messages (`+messageColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.SenderID, m.RecipientID, m.Body, m.ReadAt, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// GetByID obtiene un mensaje por ID.
func (r *MessageRepo) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	m, err := scanMessage(r.q.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return m, nil
}

// ListForUser lista el buzón del usuario, más recientes primero.
func (r *MessageRepo) ListForUser(ctx context.Context, userID, mailbox string, limit, offset int) ([]*entity.Message, error) {
	column := "recipient_id"
	if mailbox == entity.MailboxSent {
		column = "sender_id"
	}
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE ` + column + ` = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// MarkRead fija read_at solo si aún es NULL.
func (r *MessageRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE messages SET read_at = NOW() WHERE id = $1 AND read_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

func scanMessage(row pgxScanner) (*entity.Message, error) {
	var m entity.Message
	if err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.ReadAt, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
