package entity

import "time"

// Message mensaje directo entre dos usuarios. El transporte en tiempo real queda fuera; aquí solo se persiste.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Body        string
	ReadAt      *time.Time // nil = no leído
	CreatedAt   time.Time
}

// Buzones de mensajes.
const (
	MailboxInbox = "inbox"
	MailboxSent  = "sent"
)
