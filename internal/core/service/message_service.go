package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// MessageTimeLayout renders DD.MM.YYYY HH:MM.
const MessageTimeLayout = "02.01.2006 15:04"

type MessageService struct {
	reader ports.ConversationReader
	writer ports.MessageWriter
	users  ports.UserRepository
	text   ports.TextRenderer
	loc    *time.Location
	log    zerolog.Logger
	now    func() time.Time
}

// NewMessageService wires the chat use cases. loc is the zone message
// timestamps are shown in; nil means UTC.
func NewMessageService(reader ports.ConversationReader, writer ports.MessageWriter, users ports.UserRepository, text ports.TextRenderer, loc *time.Location, log zerolog.Logger) *MessageService {
	if loc == nil {
		loc = time.UTC
	}
	return &MessageService{
		reader: reader,
		writer: writer,
		users:  users,
		text:   text,
		loc:    loc,
		log:    log,
		now:    time.Now,
	}
}

// Contacts lists everybody the caller can open a chat with.
func (s *MessageService) Contacts(ctx context.Context, who domain.Identity) ([]ports.UserRef, error) {
	if !who.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	users, err := s.users.List(ctx, domain.RoleAnonymous)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	out := make([]ports.UserRef, 0, len(users))
	for _, u := range users {
		if who.Is(u.ID) {
			continue
		}
		out = append(out, ports.UserRef{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

func (s *MessageService) Room(ctx context.Context, who domain.Identity, peerID string) (*ports.ChatRoom, error) {
	if !who.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	peer, err := s.users.FindByID(ctx, peerID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.conversation(ctx, who, peer.ID)
	if err != nil {
		return nil, err
	}
	return &ports.ChatRoom{
		Peer:     ports.UserRef{ID: peer.ID, Username: peer.Username},
		Messages: msgs,
	}, nil
}

// Conversation returns both directions of the exchange with peerID, oldest
// first, flagging the caller's own messages.
func (s *MessageService) Conversation(ctx context.Context, who domain.Identity, peerID string) ([]ports.MessageView, error) {
	if !who.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	peer, err := s.users.FindByID(ctx, peerID)
	if err != nil {
		return nil, err
	}
	return s.conversation(ctx, who, peer.ID)
}

func (s *MessageService) conversation(ctx context.Context, who domain.Identity, peerID string) ([]ports.MessageView, error) {
	msgs, err := s.reader.Conversation(ctx, who.UserID, peerID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	out := make([]ports.MessageView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ports.MessageView{
			Text:    m.Text,
			IsMe:    m.SenderID == who.UserID,
			Created: m.CreatedAt.In(s.loc).Format(MessageTimeLayout),
		})
	}
	return out, nil
}

// Send appends a message from the caller to receiverID.
func (s *MessageService) Send(ctx context.Context, who domain.Identity, receiverID, text string) (*domain.Message, error) {
	if !who.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	receiverID = strings.TrimSpace(receiverID)
	if receiverID == "" {
		return nil, domain.NewValidationError("receiver_id", "is required")
	}
	body := s.text.Plain(text)
	if body == "" {
		return nil, domain.NewValidationError("text", "is required")
	}

	receiver, err := s.users.FindByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("send message: %w", err)
	}

	msg := &domain.Message{
		SenderID:   who.UserID,
		ReceiverID: receiver.ID,
		Text:       body,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.writer.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.log.Debug().Str("message_id", msg.ID).Str("sender", msg.SenderID).Str("receiver", msg.ReceiverID).Msg("message sent")
	return msg, nil
}
