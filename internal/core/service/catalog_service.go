package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/policy"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

const cascadeWarning = "Deleting this service permanently deletes every incident that references it. This cannot be undone."

type CatalogService struct {
	services  ports.ServiceRepository
	incidents ports.IncidentRepository
	text      ports.TextRenderer
	log       zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, incidents ports.IncidentRepository, text ports.TextRenderer, log zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, incidents: incidents, text: text, log: log}
}

// ListActive is the public catalog: active services only, no caller needed.
func (s *CatalogService) ListActive(ctx context.Context) ([]ports.ServiceView, error) {
	services, err := s.services.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	return s.views(services), nil
}

// List is the management view: every service, whatever its active flag.
func (s *CatalogService) List(ctx context.Context, who domain.Identity) (*ports.ServiceList, error) {
	if err := s.authorize(who, policy.ActionView); err != nil {
		return nil, err
	}
	services, err := s.services.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return &ports.ServiceList{
		Services:  s.views(services),
		CanManage: policy.CanManageServices(who),
	}, nil
}

func (s *CatalogService) Get(ctx context.Context, who domain.Identity, id string) (*ports.ServiceView, error) {
	if err := s.authorize(who, policy.ActionView); err != nil {
		return nil, err
	}
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(svc)
	return &v, nil
}

func (s *CatalogService) Create(ctx context.Context, who domain.Identity, f domain.ServiceFields) (*ports.ServiceView, error) {
	if err := s.authorize(who, policy.ActionCreate); err != nil {
		return nil, err
	}
	svc, err := domain.NewService(f)
	if err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info().Str("service_id", svc.ID).Str("name", svc.Name).Str("user_id", who.UserID).Msg("service created")
	v := s.view(svc)
	return &v, nil
}

func (s *CatalogService) Update(ctx context.Context, who domain.Identity, id string, f domain.ServiceFields) (*ports.ServiceView, error) {
	if err := s.authorize(who, policy.ActionEdit); err != nil {
		return nil, err
	}
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := svc.Apply(f); err != nil {
		return nil, err
	}
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.log.Info().Str("service_id", svc.ID).Str("user_id", who.UserID).Msg("service updated")
	v := s.view(svc)
	return &v, nil
}

func (s *CatalogService) DeletePreview(ctx context.Context, who domain.Identity, id string) (*ports.DeletePreview, error) {
	if err := s.authorize(who, policy.ActionDelete); err != nil {
		return nil, err
	}
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.incidents.CountByService(ctx, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("count dependent incidents: %w", err)
	}
	return &ports.DeletePreview{
		Service:            s.view(svc),
		DependentIncidents: n,
		Warning:            cascadeWarning,
	}, nil
}

// Delete removes the dependent incidents first, then the service itself.
func (s *CatalogService) Delete(ctx context.Context, who domain.Identity, id string) (int64, error) {
	if err := s.authorize(who, policy.ActionDelete); err != nil {
		return 0, err
	}
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	removed, err := s.incidents.DeleteByService(ctx, svc.ID)
	if err != nil {
		return 0, fmt.Errorf("delete service incidents: %w", err)
	}
	if err := s.services.Delete(ctx, svc.ID); err != nil {
		return removed, fmt.Errorf("delete service: %w", err)
	}

	s.log.Warn().
		Str("service_id", svc.ID).
		Str("name", svc.Name).
		Int64("incidents_deleted", removed).
		Str("user_id", who.UserID).
		Msg("service deleted")
	return removed, nil
}

func (s *CatalogService) authorize(who domain.Identity, act policy.Action) error {
	if err := policy.Authorize(who, policy.ResourceService, act); err != nil {
		if who.IsAuthenticated() {
			s.log.Warn().Str("user_id", who.UserID).Str("role", who.Role.String()).Str("action", string(act)).Msg("service action denied")
		}
		return err
	}
	return nil
}

func (s *CatalogService) views(services []*domain.Service) []ports.ServiceView {
	out := make([]ports.ServiceView, 0, len(services))
	for _, svc := range services {
		out = append(out, s.view(svc))
	}
	return out
}

func (s *CatalogService) view(svc *domain.Service) ports.ServiceView {
	html, err := s.text.Markdown(svc.Description)
	if err != nil {
		s.log.Warn().Err(err).Str("service_id", svc.ID).Msg("description render failed")
		html = ""
	}
	return ports.ServiceView{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DescriptionHTML: html,
		Price:           svc.PriceString(),
		IsActive:        svc.IsActive,
	}
}
