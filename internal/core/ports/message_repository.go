package ports

import (
	"context"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// ConversationReader is the pull-side contract of direct messaging. A push
// transport can sit next to it without touching the stored messages.
type ConversationReader interface {
	// Conversation returns every message exchanged between a and b in either
	// direction, oldest first.
	Conversation(ctx context.Context, a, b string) ([]*domain.Message, error)
}

// MessageWriter appends messages. Stored messages are never changed.
type MessageWriter interface {
	Append(ctx context.Context, m *domain.Message) error
}

type MessageRepository interface {
	ConversationReader
	MessageWriter
	DeleteByUser(ctx context.Context, userID string) error
}
