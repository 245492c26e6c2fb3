package ports

import (
	"context"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// NewUserInput describes an account in terms of the legacy flags and groups;
// the service collapses them into a single role.
type NewUserInput struct {
	Username    string
	Password    string
	IsSuperuser bool
	IsStaff     bool
	Groups      []string
}

type UserService interface {
	Create(ctx context.Context, in NewUserInput) (*domain.User, error)
	// Recreate deletes any account with the same username first.
	Recreate(ctx context.Context, in NewUserInput) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.User, error)
}
