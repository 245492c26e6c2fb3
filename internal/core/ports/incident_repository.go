package ports

import (
	"context"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// IncidentFilter narrows an incident listing. Zero fields do not filter.
type IncidentFilter struct {
	Status     domain.IncidentStatus
	ServiceID  string
	AssignedTo string
	// Search is a case-insensitive substring match on the comment.
	Search string
}

// IncidentRepository defines persistence operations for incidents. Updates
// touch a single field each and are last-write-wins.
type IncidentRepository interface {
	Create(ctx context.Context, inc *domain.Incident) error
	FindByID(ctx context.Context, id string) (*domain.Incident, error)
	// List returns matching incidents, newest first.
	List(ctx context.Context, filter IncidentFilter) ([]*domain.Incident, error)
	UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error
	// UpdateAssignee sets the assignee; nil clears it.
	UpdateAssignee(ctx context.Context, id string, assignee *string) error
	CountByService(ctx context.Context, serviceID string) (int64, error)
	DeleteByService(ctx context.Context, serviceID string) (int64, error)
	// DetachUser nulls created_by and assigned_to wherever they point at userID.
	DetachUser(ctx context.Context, userID string) error
}
