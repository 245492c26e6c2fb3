package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// UserService manages accounts. It backs the CLI, not the HTTP API.
type UserService struct {
	users     ports.UserRepository
	incidents ports.IncidentRepository
	messages  ports.MessageRepository
	log       zerolog.Logger
}

func NewUserService(users ports.UserRepository, incidents ports.IncidentRepository, messages ports.MessageRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, incidents: incidents, messages: messages, log: log}
}

func (s *UserService) Create(ctx context.Context, in ports.NewUserInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.ResolveRole(in.IsSuperuser, in.IsStaff, in.Groups),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Str("role", created.Role.String()).Msg("user created")
	return created, nil
}

func (s *UserService) Recreate(ctx context.Context, in ports.NewUserInput) (*domain.User, error) {
	if err := s.Delete(ctx, in.Username); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return s.Create(ctx, in)
}

// Delete removes the account and its messages. Incidents that referenced the
// account keep existing with the reference cleared.
func (s *UserService) Delete(ctx context.Context, username string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.incidents.DetachUser(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: detach incidents: %w", err)
	}
	if err := s.messages.DeleteByUser(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: messages: %w", err)
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user deleted")
	return nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx, domain.RoleAnonymous)
}
