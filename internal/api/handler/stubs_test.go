package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/servicedesk/service-desk/internal/api/middleware"
	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/policy"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
	logoutFn func(ctx context.Context, claims ports.TokenClaims) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, claims ports.TokenClaims) error {
	return s.logoutFn(ctx, claims)
}

func (s *stubAuthService) Verify(context.Context, string) (ports.TokenClaims, error) {
	return ports.TokenClaims{}, domain.ErrUnauthenticated
}

type stubIncidentService struct {
	submitFn       func(ctx context.Context, who domain.Identity, in ports.SubmitIncidentInput) (*ports.SubmitResult, error)
	listFn         func(ctx context.Context, who domain.Identity, f ports.IncidentFilter) ([]ports.IncidentView, error)
	getFn          func(ctx context.Context, who domain.Identity, id string) (*ports.IncidentDetail, error)
	changeStatusFn func(ctx context.Context, who domain.Identity, id, status string) (*domain.Incident, error)
	assignFn       func(ctx context.Context, who domain.Identity, id, assignee string) (*domain.Incident, error)
}

func (s *stubIncidentService) Submit(ctx context.Context, who domain.Identity, in ports.SubmitIncidentInput) (*ports.SubmitResult, error) {
	return s.submitFn(ctx, who, in)
}

func (s *stubIncidentService) List(ctx context.Context, who domain.Identity, f ports.IncidentFilter) ([]ports.IncidentView, error) {
	return s.listFn(ctx, who, f)
}

func (s *stubIncidentService) Get(ctx context.Context, who domain.Identity, id string) (*ports.IncidentDetail, error) {
	return s.getFn(ctx, who, id)
}

func (s *stubIncidentService) ChangeStatus(ctx context.Context, who domain.Identity, id, status string) (*domain.Incident, error) {
	return s.changeStatusFn(ctx, who, id, status)
}

func (s *stubIncidentService) Assign(ctx context.Context, who domain.Identity, id, assignee string) (*domain.Incident, error) {
	return s.assignFn(ctx, who, id, assignee)
}

func (s *stubIncidentService) Dashboard(_ context.Context, who domain.Identity) (policy.Flags, error) {
	if err := policy.Authorize(who, policy.ResourceITSM, policy.ActionView); err != nil {
		return policy.Flags{}, err
	}
	return policy.Capabilities(who), nil
}

type stubCatalogService struct {
	listActiveFn    func(ctx context.Context) ([]ports.ServiceView, error)
	listFn          func(ctx context.Context, who domain.Identity) (*ports.ServiceList, error)
	getFn           func(ctx context.Context, who domain.Identity, id string) (*ports.ServiceView, error)
	createFn        func(ctx context.Context, who domain.Identity, f domain.ServiceFields) (*ports.ServiceView, error)
	updateFn        func(ctx context.Context, who domain.Identity, id string, f domain.ServiceFields) (*ports.ServiceView, error)
	deletePreviewFn func(ctx context.Context, who domain.Identity, id string) (*ports.DeletePreview, error)
	deleteFn        func(ctx context.Context, who domain.Identity, id string) (int64, error)
}

func (s *stubCatalogService) ListActive(ctx context.Context) ([]ports.ServiceView, error) {
	return s.listActiveFn(ctx)
}

func (s *stubCatalogService) List(ctx context.Context, who domain.Identity) (*ports.ServiceList, error) {
	return s.listFn(ctx, who)
}

func (s *stubCatalogService) Get(ctx context.Context, who domain.Identity, id string) (*ports.ServiceView, error) {
	return s.getFn(ctx, who, id)
}

func (s *stubCatalogService) Create(ctx context.Context, who domain.Identity, f domain.ServiceFields) (*ports.ServiceView, error) {
	return s.createFn(ctx, who, f)
}

func (s *stubCatalogService) Update(ctx context.Context, who domain.Identity, id string, f domain.ServiceFields) (*ports.ServiceView, error) {
	return s.updateFn(ctx, who, id, f)
}

func (s *stubCatalogService) DeletePreview(ctx context.Context, who domain.Identity, id string) (*ports.DeletePreview, error) {
	return s.deletePreviewFn(ctx, who, id)
}

func (s *stubCatalogService) Delete(ctx context.Context, who domain.Identity, id string) (int64, error) {
	return s.deleteFn(ctx, who, id)
}

type stubMessageService struct {
	contactsFn     func(ctx context.Context, who domain.Identity) ([]ports.UserRef, error)
	roomFn         func(ctx context.Context, who domain.Identity, peer string) (*ports.ChatRoom, error)
	conversationFn func(ctx context.Context, who domain.Identity, peer string) ([]ports.MessageView, error)
	sendFn         func(ctx context.Context, who domain.Identity, receiver, text string) (*domain.Message, error)
}

func (s *stubMessageService) Contacts(ctx context.Context, who domain.Identity) ([]ports.UserRef, error) {
	return s.contactsFn(ctx, who)
}

func (s *stubMessageService) Room(ctx context.Context, who domain.Identity, peer string) (*ports.ChatRoom, error) {
	return s.roomFn(ctx, who, peer)
}

func (s *stubMessageService) Conversation(ctx context.Context, who domain.Identity, peer string) ([]ports.MessageView, error) {
	return s.conversationFn(ctx, who, peer)
}

func (s *stubMessageService) Send(ctx context.Context, who domain.Identity, receiver, text string) (*domain.Message, error) {
	return s.sendFn(ctx, who, receiver, text)
}

var (
	adminID    = domain.Identity{UserID: "65f1c0ffee00000000000001", Username: "admin", Role: domain.RoleAdmin}
	techID     = domain.Identity{UserID: "65f1c0ffee00000000000002", Username: "tech1", Role: domain.RoleTech}
	employeeID = domain.Identity{UserID: "65f1c0ffee00000000000003", Username: "employee1", Role: domain.RoleEmployee}
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newFormContext builds a request context carrying a form body, optional
// path params and the given caller.
func newFormContext(e *echo.Echo, method, target string, form url.Values, who domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if who.IsAuthenticated() {
		middleware.SetClaims(c, ports.TokenClaims{Identity: who, TokenID: "jti-" + who.Username})
	}
	return c, rec
}
