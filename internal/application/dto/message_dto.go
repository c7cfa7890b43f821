package dto

import (
	"time"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// SendMessageRequest entrada para enviar un mensaje directo.
type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Body        string `json:"body" validate:"required,max=2000"`
}

// MessageResponse salida de un mensaje.
type MessageResponse struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	RecipientID string     `json:"recipient_id"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// MessageListResponse buzón paginado.
type MessageListResponse struct {
	Box   string            `json:"box"`
	Items []MessageResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ToMessageResponse mapea la entidad a su salida pública.
func ToMessageResponse(m *entity.Message) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}
