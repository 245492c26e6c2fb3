package ports

import (
	"context"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// MessageView is one message as seen by a participant.
type MessageView struct {
	Text    string
	IsMe    bool
	Created string
}

// ChatRoom is the conversation page with one peer.
type ChatRoom struct {
	Peer     UserRef
	Messages []MessageView
}

type MessageService interface {
	Contacts(ctx context.Context, who domain.Identity) ([]UserRef, error)
	Room(ctx context.Context, who domain.Identity, peerID string) (*ChatRoom, error)
	Conversation(ctx context.Context, who domain.Identity, peerID string) ([]MessageView, error)
	Send(ctx context.Context, who domain.Identity, receiverID, text string) (*domain.Message, error)
}
