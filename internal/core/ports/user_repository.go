package ports

import (
	"context"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns every account ordered by username. An empty role means all roles.
	List(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
