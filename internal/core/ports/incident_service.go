package ports

import (
	"context"
	"time"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/policy"
)

// SubmitIncidentInput carries an intake form submission.
type SubmitIncidentInput struct {
	ServiceID      string
	Comment        string
	IdempotencyKey string
	// ClientKey identifies an anonymous submitter for rate limiting, usually
	// the remote IP.
	ClientKey string
}

// SubmitResult is returned by Submit. Replayed is true when the idempotency
// key matched an earlier submission.
type SubmitResult struct {
	Incident *domain.Incident
	Service  *domain.Service
	Replayed bool
}

// UserRef is the public face of an account.
type UserRef struct {
	ID       string
	Username string
}

// IncidentView is an incident joined with the names it references.
type IncidentView struct {
	ID          string
	Number      string
	ServiceID   string
	ServiceName string
	Comment     string
	Status      domain.IncidentStatus
	CreatedBy   *UserRef
	AssignedTo  *UserRef
	CreatedAt   time.Time
}

// StatusChoice is one selectable status.
type StatusChoice struct {
	Value string
	Label string
}

// IncidentDetail is the detail page: the incident plus what the caller may do.
type IncidentDetail struct {
	Incident      IncidentView
	CanEditStatus bool
	CanAssign     bool
	StatusChoices []StatusChoice
	// Techs is only filled for callers who may assign.
	Techs []UserRef
}

type IncidentService interface {
	Submit(ctx context.Context, who domain.Identity, in SubmitIncidentInput) (*SubmitResult, error)
	List(ctx context.Context, who domain.Identity, filter IncidentFilter) ([]IncidentView, error)
	Get(ctx context.Context, who domain.Identity, id string) (*IncidentDetail, error)
	ChangeStatus(ctx context.Context, who domain.Identity, id, status string) (*domain.Incident, error)
	// Assign sets the assignee; an empty assigneeID unassigns.
	Assign(ctx context.Context, who domain.Identity, id, assigneeID string) (*domain.Incident, error)
	Dashboard(ctx context.Context, who domain.Identity) (policy.Flags, error)
}

// IdempotencyStore maps an idempotency key to the incident it created.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Remember(ctx context.Context, key, incidentID string) error
}

// RateLimiter admits or rejects one more event for key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
