package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/policy"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

type IncidentService struct {
	incidents   ports.IncidentRepository
	services    ports.ServiceRepository
	users       ports.UserRepository
	idempotency ports.IdempotencyStore
	limiter     ports.RateLimiter
	text        ports.TextRenderer
	logger      zerolog.Logger
	now         func() time.Time
}

func NewIncidentService(
	incidents ports.IncidentRepository,
	services ports.ServiceRepository,
	users ports.UserRepository,
	idempotency ports.IdempotencyStore,
	limiter ports.RateLimiter,
	text ports.TextRenderer,
	logger zerolog.Logger,
) *IncidentService {
	return &IncidentService{
		incidents:   incidents,
		services:    services,
		users:       users,
		idempotency: idempotency,
		limiter:     limiter,
		text:        text,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit creates an incident from the intake form. Anyone may submit; a
// signed-in caller is recorded as the creator. When an idempotency key is
// given and already seen, the earlier incident is returned unchanged.
func (s *IncidentService) Submit(ctx context.Context, who domain.Identity, in ports.SubmitIncidentInput) (*ports.SubmitResult, error) {
	if in.IdempotencyKey != "" {
		if res, ok := s.replay(ctx, in.IdempotencyKey); ok {
			return res, nil
		}
	}

	if !who.IsAuthenticated() && in.ClientKey != "" {
		allowed, err := s.limiter.Allow(ctx, in.ClientKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("client", in.ClientKey).Msg("rate limit check failed, accepting submission")
		} else if !allowed {
			return nil, domain.ErrRateLimited
		}
	}

	if strings.TrimSpace(in.ServiceID) == "" {
		return nil, domain.NewValidationError("service", "is required")
	}
	comment := s.text.Plain(in.Comment)
	if comment == "" {
		return nil, domain.NewValidationError("comment", "is required")
	}

	svc, err := s.services.FindByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return nil, domain.NewValidationError("service", "select a valid service")
		}
		return nil, fmt.Errorf("submit incident: %w", err)
	}

	inc := &domain.Incident{
		Number:    generateIncidentNumber(),
		ServiceID: svc.ID,
		Comment:   comment,
		Status:    domain.StatusNew,
		CreatedAt: s.now().UTC(),
	}
	if who.IsAuthenticated() {
		creator := who.UserID
		inc.CreatedBy = &creator
	}

	if err := s.incidents.Create(ctx, inc); err != nil {
		s.logger.Error().Err(err).Msg("failed to create incident")
		return nil, fmt.Errorf("submit incident: %w", err)
	}

	if in.IdempotencyKey != "" {
		if err := s.idempotency.Remember(ctx, in.IdempotencyKey, inc.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().
		Str("incident_id", inc.ID).
		Str("number", inc.Number).
		Str("service_id", svc.ID).
		Str("user_id", who.UserID).
		Msg("incident submitted")

	return &ports.SubmitResult{Incident: inc, Service: svc}, nil
}

func (s *IncidentService) replay(ctx context.Context, key string) (*ports.SubmitResult, bool) {
	id, found, err := s.idempotency.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed")
		return nil, false
	}
	if !found {
		return nil, false
	}
	inc, err := s.incidents.FindByID(ctx, id)
	if err != nil {
		return nil, false
	}
	svc, err := s.services.FindByID(ctx, inc.ServiceID)
	if err != nil {
		return nil, false
	}
	s.logger.Info().Str("idempotency_key", key).Str("incident_id", inc.ID).Msg("idempotent replay")
	return &ports.SubmitResult{Incident: inc, Service: svc, Replayed: true}, true
}

// List returns every incident to any signed-in role, newest first.
func (s *IncidentService) List(ctx context.Context, who domain.Identity, filter ports.IncidentFilter) ([]ports.IncidentView, error) {
	if err := s.authorize(who, policy.ActionView); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	incidents, err := s.incidents.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}

	r := newResolver(s.services, s.users)
	out := make([]ports.IncidentView, 0, len(incidents))
	for _, inc := range incidents {
		out = append(out, r.view(ctx, inc))
	}
	return out, nil
}

func (s *IncidentService) Get(ctx context.Context, who domain.Identity, id string) (*ports.IncidentDetail, error) {
	if err := s.authorize(who, policy.ActionView); err != nil {
		return nil, err
	}
	inc, err := s.incidents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.IncidentDetail{
		Incident:      newResolver(s.services, s.users).view(ctx, inc),
		CanEditStatus: policy.CanEditStatus(who, inc),
		CanAssign:     policy.CanAssign(who, inc),
	}
	for _, st := range domain.IncidentStatuses() {
		detail.StatusChoices = append(detail.StatusChoices, ports.StatusChoice{Value: string(st), Label: st.Label()})
	}

	if detail.CanAssign {
		techs, err := s.users.List(ctx, domain.RoleTech)
		if err != nil {
			return nil, fmt.Errorf("list technicians: %w", err)
		}
		for _, t := range techs {
			detail.Techs = append(detail.Techs, ports.UserRef{ID: t.ID, Username: t.Username})
		}
	}
	return detail, nil
}

// ChangeStatus sets any of the known statuses regardless of the current one.
func (s *IncidentService) ChangeStatus(ctx context.Context, who domain.Identity, id, status string) (*domain.Incident, error) {
	inc, err := s.load(ctx, who, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditStatus(who, inc) {
		s.deny(who, policy.ActionChangeStatus, inc)
		return nil, domain.ErrForbidden
	}

	next, err := domain.ParseIncidentStatus(status)
	if err != nil {
		return nil, err
	}
	if err := s.incidents.UpdateStatus(ctx, inc.ID, next); err != nil {
		return nil, fmt.Errorf("change status: %w", err)
	}

	s.logger.Info().
		Str("incident_id", inc.ID).
		Str("from", string(inc.Status)).
		Str("to", string(next)).
		Bool("closed", next.Terminal()).
		Str("user_id", who.UserID).
		Msg("incident status changed")

	inc.Status = next
	return inc, nil
}

// Assign sets or clears the assignee. An empty assigneeID unassigns.
func (s *IncidentService) Assign(ctx context.Context, who domain.Identity, id, assigneeID string) (*domain.Incident, error) {
	inc, err := s.load(ctx, who, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAssign(who, inc) {
		s.deny(who, policy.ActionAssign, inc)
		return nil, domain.ErrForbidden
	}

	var assignee *string
	if assigneeID = strings.TrimSpace(assigneeID); assigneeID != "" {
		user, err := s.users.FindByID(ctx, assigneeID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.NewValidationError("assigned_to", "assignee not found")
			}
			return nil, fmt.Errorf("assign incident: %w", err)
		}
		if user.Role != domain.RoleTech {
			s.logger.Warn().Str("incident_id", inc.ID).Str("assignee", user.ID).Str("role", user.Role.String()).Msg("incident assigned to a non-technician")
		}
		assignee = &user.ID
	}

	if err := s.incidents.UpdateAssignee(ctx, inc.ID, assignee); err != nil {
		return nil, fmt.Errorf("assign incident: %w", err)
	}

	ev := s.logger.Info().Str("incident_id", inc.ID).Str("user_id", who.UserID)
	if assignee == nil {
		ev.Msg("incident unassigned")
	} else {
		ev.Str("assignee", *assignee).Msg("incident assigned")
	}

	inc.AssignedTo = assignee
	return inc, nil
}

// Dashboard returns the caller's role flags for the ITSM landing page.
func (s *IncidentService) Dashboard(_ context.Context, who domain.Identity) (policy.Flags, error) {
	if err := policy.Authorize(who, policy.ResourceITSM, policy.ActionView); err != nil {
		return policy.Flags{}, err
	}
	return policy.Capabilities(who), nil
}

// load fetches the incident for a mutation. Anonymous callers are rejected
// before the lookup; a missing incident wins over a missing capability.
func (s *IncidentService) load(ctx context.Context, who domain.Identity, id string) (*domain.Incident, error) {
	if err := s.authorize(who, policy.ActionView); err != nil {
		return nil, err
	}
	return s.incidents.FindByID(ctx, id)
}

func (s *IncidentService) authorize(who domain.Identity, act policy.Action) error {
	if err := policy.Authorize(who, policy.ResourceIncident, act); err != nil {
		if who.IsAuthenticated() {
			s.deny(who, act, nil)
		}
		return err
	}
	return nil
}

func (s *IncidentService) deny(who domain.Identity, act policy.Action, inc *domain.Incident) {
	ev := s.logger.Warn().Str("user_id", who.UserID).Str("role", who.Role.String()).Str("action", string(act))
	if inc != nil {
		ev = ev.Str("incident_id", inc.ID)
	}
	ev.Msg("incident action denied")
}

// generateIncidentNumber returns a public reference in the format INC-XXXXXXXX.
func generateIncidentNumber() string {
	id := uuid.New()
	return fmt.Sprintf("INC-%X", id[:4])
}

// resolver joins incidents with service and user names, caching lookups for
// the duration of one request.
type resolver struct {
	services ports.ServiceRepository
	users    ports.UserRepository
	svcNames map[string]string
	userRefs map[string]*ports.UserRef
}

func newResolver(services ports.ServiceRepository, users ports.UserRepository) *resolver {
	return &resolver{
		services: services,
		users:    users,
		svcNames: make(map[string]string),
		userRefs: make(map[string]*ports.UserRef),
	}
}

func (r *resolver) view(ctx context.Context, inc *domain.Incident) ports.IncidentView {
	return ports.IncidentView{
		ID:          inc.ID,
		Number:      inc.Number,
		ServiceID:   inc.ServiceID,
		ServiceName: r.serviceName(ctx, inc.ServiceID),
		Comment:     inc.Comment,
		Status:      inc.Status,
		CreatedBy:   r.user(ctx, inc.CreatedBy),
		AssignedTo:  r.user(ctx, inc.AssignedTo),
		CreatedAt:   inc.CreatedAt,
	}
}

func (r *resolver) serviceName(ctx context.Context, id string) string {
	if name, ok := r.svcNames[id]; ok {
		return name
	}
	name := ""
	if svc, err := r.services.FindByID(ctx, id); err == nil {
		name = svc.Name
	}
	r.svcNames[id] = name
	return name
}

func (r *resolver) user(ctx context.Context, id *string) *ports.UserRef {
	if id == nil {
		return nil
	}
	if ref, ok := r.userRefs[*id]; ok {
		return ref
	}
	var ref *ports.UserRef
	if u, err := r.users.FindByID(ctx, *id); err == nil {
		ref = &ports.UserRef{ID: u.ID, Username: u.Username}
	}
	r.userRefs[*id] = ref
	return ref
}
