package ports

import (
	"context"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// ServiceRepository defines persistence operations for catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// List returns services ordered by name; activeOnly hides inactive ones.
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	Delete(ctx context.Context, id string) error
}
