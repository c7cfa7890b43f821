package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/profile"
	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
)

// MessageUseCase mensajes directos entre usuarios (solo persistencia).
type MessageUseCase struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	builder  *profile.Builder
	now      func() time.Time
}

// NewMessageUseCase construye el caso de uso.
func NewMessageUseCase(messages repository.MessageRepository, users repository.UserRepository, builder *profile.Builder) *MessageUseCase {
	if builder == nil {
		builder = profile.NewBuilder(nil)
	}
	return &MessageUseCase{messages: messages, users: users, builder: builder, now: time.Now}
}

// Send guarda un mensaje de senderID al destinatario del request.
func (uc *MessageUseCase) Send(ctx context.Context, senderID string, in dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.RecipientID == senderID {
		return nil, domain.NewValidationError("recipient_id", "no puede ser el remitente")
	}
	body := uc.builder.Body(in.Body)
	if body == "" {
		return nil, domain.NewValidationError("body", "es requerido")
	}
	recipient, err := uc.users.GetByID(ctx, in.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrUserNotFound
	}

	m := &entity.Message{
		ID:          uuid.New().String(),
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Body:        body,
		CreatedAt:   uc.now(),
	}
	if err := uc.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return dto.ToMessageResponse(m), nil
}

// List devuelve el buzón (inbox por defecto, o sent) del usuario.
func (uc *MessageUseCase) List(ctx context.Context, userID, box string, page dto.PageRequest) (*dto.MessageListResponse, error) {
	if box == "" {
		box = entity.MailboxInbox
	}
	if box != entity.MailboxInbox && box != entity.MailboxSent {
		return nil, domain.NewValidationError("box", "debe ser uno de: inbox sent")
	}
	page.DefaultPage()
	list, err := uc.messages.ListForUser(ctx, userID, box, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MessageResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMessageResponse(m))
	}
	return &dto.MessageListResponse{
		Box:   box,
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// MarkRead marca el mensaje como leído. Solo el destinatario puede hacerlo; repetirlo no cambia read_at.
func (uc *MessageUseCase) MarkRead(ctx context.Context, userID, messageID string) (*dto.MessageResponse, error) {
	m, err := uc.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.RecipientID != userID {
		return nil, domain.ErrForbidden
	}
	if m.ReadAt != nil {
		return dto.ToMessageResponse(m), nil
	}
	if err := uc.messages.MarkRead(ctx, m.ID); err != nil {
		return nil, err
	}
	// read_at lo fija el store; se relee para devolver el valor guardado.
	read, err := uc.messages.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if read == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToMessageResponse(read), nil
}
