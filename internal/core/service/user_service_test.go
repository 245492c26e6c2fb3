package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

func TestUserService_Create_ResolvesRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubIncidentRepo(), &stubMessageRepo{}, discardLogger)

	cases := []struct {
		in   ports.NewUserInput
		role domain.Role
	}{
		{ports.NewUserInput{Username: "root", Password: "p", IsSuperuser: true}, domain.RoleAdmin},
		{ports.NewUserInput{Username: "staff", Password: "p", IsStaff: true, Groups: []string{domain.GroupTech}}, domain.RoleAdmin},
		{ports.NewUserInput{Username: "tech1", Password: "p", Groups: []string{domain.GroupEmployee, domain.GroupTech}}, domain.RoleTech},
		{ports.NewUserInput{Username: "employee1", Password: "p", Groups: []string{domain.GroupEmployee}}, domain.RoleEmployee},
		{ports.NewUserInput{Username: "plain", Password: "p"}, domain.RoleEmployee},
	}
	for _, tc := range cases {
		user, err := svc.Create(context.Background(), tc.in)
		if err != nil {
			t.Fatalf("create %s: %v", tc.in.Username, err)
		}
		if user.Role != tc.role {
			t.Fatalf("%s: expected role %s, got %s", tc.in.Username, tc.role, user.Role)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("p")); err != nil {
			t.Fatalf("stored hash does not match password: %v", err)
		}
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubIncidentRepo(), &stubMessageRepo{}, discardLogger)

	if _, err := svc.Create(context.Background(), ports.NewUserInput{Password: "p"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing username, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.NewUserInput{Username: "bob"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing password, got %v", err)
	}
	_, _ = svc.Create(context.Background(), ports.NewUserInput{Username: "bob", Password: "p"})
	if _, err := svc.Create(context.Background(), ports.NewUserInput{Username: "bob", Password: "q"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Recreate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubIncidentRepo(), &stubMessageRepo{}, discardLogger)

	if _, err := svc.Recreate(context.Background(), ports.NewUserInput{Username: "tech1", Password: "old"}); err != nil {
		t.Fatalf("recreate on empty store: %v", err)
	}
	user, err := svc.Recreate(context.Background(), ports.NewUserInput{Username: "tech1", Password: "new", Groups: []string{domain.GroupTech}})
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	if user.Role != domain.RoleTech {
		t.Fatalf("expected tech role, got %s", user.Role)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single account, got %d", len(repo.users))
	}
}

func TestUserService_Delete_DetachesIncidentsAndDropsMessages(t *testing.T) {
	users := newStubUserRepo()
	incidents := newStubIncidentRepo()
	msgs := &stubMessageRepo{}
	svc := NewUserService(users, incidents, msgs, discardLogger)

	gone := users.add("tech1", domain.RoleTech)
	stays := users.add("employee1", domain.RoleEmployee)

	creator := stays.ID
	assignee := gone.ID
	inc := &domain.Incident{ServiceID: "svc-1", CreatedBy: &creator, AssignedTo: &assignee, Status: domain.StatusInProgress}
	_ = incidents.Create(context.Background(), inc)
	_ = msgs.Append(context.Background(), &domain.Message{SenderID: gone.ID, ReceiverID: stays.ID, Text: "on it"})
	_ = msgs.Append(context.Background(), &domain.Message{SenderID: stays.ID, ReceiverID: stays.ID, Text: "note to self"})

	if err := svc.Delete(context.Background(), "tech1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	stored := incidents.incidents[inc.ID]
	if stored == nil {
		t.Fatalf("incident must survive its assignee")
	}
	if stored.AssignedTo != nil {
		t.Fatalf("expected assignee cleared")
	}
	if stored.CreatedBy == nil || *stored.CreatedBy != stays.ID {
		t.Fatalf("expected creator untouched")
	}
	if len(msgs.messages) != 1 || msgs.messages[0].Text != "note to self" {
		t.Fatalf("expected only unrelated messages to remain, got %+v", msgs.messages)
	}
	if _, err := users.FindByUsername(context.Background(), "tech1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user to be gone, got %v", err)
	}

	if err := svc.Delete(context.Background(), "tech1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
