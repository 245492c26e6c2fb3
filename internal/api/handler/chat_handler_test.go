package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

func TestChatHandler_Contacts(t *testing.T) {
	stub := &stubMessageService{
		contactsFn: func(ctx context.Context, who domain.Identity) ([]ports.UserRef, error) {
			return []ports.UserRef{{ID: techID.UserID, Username: "tech1"}}, nil
		},
	}
	e := newEcho()
	c, rec := newFormContext(e, http.MethodGet, "/chat/", nil, employeeID)

	if err := NewChatHandler(stub).Contacts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp contactsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].Username != "tech1" {
		t.Fatalf("unexpected contacts: %+v", resp.Users)
	}
}

func TestChatHandler_RoomAndMessages(t *testing.T) {
	conversation := []ports.MessageView{
		{Text: "hi", IsMe: true, Created: "06.05.2024 12:30"},
		{Text: "hello", IsMe: false, Created: "06.05.2024 12:31"},
	}
	stub := &stubMessageService{
		roomFn: func(ctx context.Context, who domain.Identity, peer string) (*ports.ChatRoom, error) {
			if peer != techID.UserID {
				return nil, domain.ErrUserNotFound
			}
			return &ports.ChatRoom{Peer: ports.UserRef{ID: peer, Username: "tech1"}, Messages: conversation}, nil
		},
		conversationFn: func(ctx context.Context, who domain.Identity, peer string) ([]ports.MessageView, error) {
			return conversation, nil
		},
	}
	h := NewChatHandler(stub)
	e := newEcho()

	c, rec := newFormContext(e, http.MethodGet, "/", nil, employeeID)
	if err := h.Room(withID(c, "user_id", techID.UserID)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var room roomResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &room); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if room.Peer.Username != "tech1" || len(room.Messages) != 2 {
		t.Fatalf("unexpected room: %+v", room)
	}

	c, _ = newFormContext(e, http.MethodGet, "/", nil, employeeID)
	if err := h.Room(withID(c, "user_id", "ghost")); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	c, rec = newFormContext(e, http.MethodGet, "/", nil, employeeID)
	if err := h.Messages(withID(c, "user_id", techID.UserID)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var raw map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	msgs := raw["messages"]
	if len(msgs) != 2 || msgs[0]["text"] != "hi" || msgs[0]["is_me"] != true || msgs[0]["created"] != "06.05.2024 12:30" {
		t.Fatalf("unexpected messages envelope: %+v", msgs)
	}
}

func TestChatHandler_Send(t *testing.T) {
	stub := &stubMessageService{
		sendFn: func(ctx context.Context, who domain.Identity, receiver, text string) (*domain.Message, error) {
			switch {
			case text == "":
				return nil, domain.NewValidationError("text", "text is required")
			case receiver != techID.UserID:
				return nil, domain.ErrUserNotFound
			}
			return &domain.Message{SenderID: who.UserID, ReceiverID: receiver, Text: text}, nil
		},
	}
	h := NewChatHandler(stub)

	tests := []struct {
		name       string
		form       url.Values
		wantCode   int
		wantStatus string
		wantError  string
	}{
		{"ok", url.Values{"receiver_id": {techID.UserID}, "text": {"hi"}}, http.StatusOK, "ok", ""},
		{"empty text", url.Values{"receiver_id": {techID.UserID}, "text": {""}}, http.StatusBadRequest, "error", "text: text is required"},
		{"unknown receiver", url.Values{"receiver_id": {"ghost"}, "text": {"hi"}}, http.StatusNotFound, "error", "receiver not found"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho()
			c, rec := newFormContext(e, http.MethodPost, "/api/messages/send/", tc.form, employeeID)

			if err := h.Send(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp sendResult
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tc.wantStatus || resp.Error != tc.wantError {
				t.Fatalf("unexpected envelope: %+v", resp)
			}
		})
	}
}
