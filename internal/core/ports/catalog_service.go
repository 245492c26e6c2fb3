package ports

import (
	"context"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// ServiceView is a catalog entry prepared for display.
type ServiceView struct {
	ID              string
	Name            string
	Description     string
	DescriptionHTML string
	Price           string
	IsActive        bool
}

// ServiceList is the management listing.
type ServiceList struct {
	Services  []ServiceView
	CanManage bool
}

// DeletePreview is what a caller sees before confirming a cascade delete.
type DeletePreview struct {
	Service            ServiceView
	DependentIncidents int64
	Warning            string
}

type CatalogService interface {
	ListActive(ctx context.Context) ([]ServiceView, error)
	List(ctx context.Context, who domain.Identity) (*ServiceList, error)
	Get(ctx context.Context, who domain.Identity, id string) (*ServiceView, error)
	Create(ctx context.Context, who domain.Identity, f domain.ServiceFields) (*ServiceView, error)
	Update(ctx context.Context, who domain.Identity, id string, f domain.ServiceFields) (*ServiceView, error)
	DeletePreview(ctx context.Context, who domain.Identity, id string) (*DeletePreview, error)
	// Delete removes the service and every incident that references it and
	// returns how many incidents went with it.
	Delete(ctx context.Context, who domain.Identity, id string) (int64, error)
}

// TextRenderer turns user-supplied text into safe output.
type TextRenderer interface {
	// Markdown renders markdown to sanitized HTML.
	Markdown(src string) (string, error)
	// Plain strips all markup and surrounding whitespace.
	Plain(src string) string
}
