package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/servicedesk/service-desk/internal/api/handler"
	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/policy"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

var tokens = map[string]domain.Identity{
	"admin-token":    {UserID: "65f1c0ffee00000000000001", Username: "admin", Role: domain.RoleAdmin},
	"tech-token":     {UserID: "65f1c0ffee00000000000002", Username: "tech1", Role: domain.RoleTech},
	"employee-token": {UserID: "65f1c0ffee00000000000003", Username: "employee1", Role: domain.RoleEmployee},
}

type fakeAuth struct{}

func (fakeAuth) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (fakeAuth) Logout(context.Context, ports.TokenClaims) error { return nil }

func (fakeAuth) Verify(_ context.Context, token string) (ports.TokenClaims, error) {
	who, ok := tokens[token]
	if !ok {
		return ports.TokenClaims{}, domain.ErrUnauthenticated
	}
	return ports.TokenClaims{Identity: who, TokenID: token, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// fakeCatalog serves one active service.
type fakeCatalog struct{}

var vpn = ports.ServiceView{ID: "65f1c0ffee000000000000b1", Name: "VPN", Price: "0.00", IsActive: true}

func (fakeCatalog) ListActive(context.Context) ([]ports.ServiceView, error) {
	return []ports.ServiceView{vpn}, nil
}

func (fakeCatalog) List(_ context.Context, who domain.Identity) (*ports.ServiceList, error) {
	return &ports.ServiceList{Services: []ports.ServiceView{vpn}, CanManage: policy.Capabilities(who).CanManageServices}, nil
}

func (fakeCatalog) Get(_ context.Context, _ domain.Identity, id string) (*ports.ServiceView, error) {
	if id != vpn.ID {
		return nil, domain.ErrServiceNotFound
	}
	v := vpn
	return &v, nil
}

func (fakeCatalog) Create(_ context.Context, _ domain.Identity, f domain.ServiceFields) (*ports.ServiceView, error) {
	return &ports.ServiceView{ID: "new", Name: f.Name, Price: f.Price, IsActive: f.IsActive}, nil
}

func (c fakeCatalog) Update(ctx context.Context, who domain.Identity, id string, _ domain.ServiceFields) (*ports.ServiceView, error) {
	return c.Get(ctx, who, id)
}

func (c fakeCatalog) DeletePreview(ctx context.Context, who domain.Identity, id string) (*ports.DeletePreview, error) {
	v, err := c.Get(ctx, who, id)
	if err != nil {
		return nil, err
	}
	return &ports.DeletePreview{Service: *v, DependentIncidents: 2, Warning: "2 incidents will be deleted"}, nil
}

func (fakeCatalog) Delete(context.Context, domain.Identity, string) (int64, error) { return 2, nil }

// fakeIncidents fails in the ways the error mapping has to handle.
type fakeIncidents struct{}

func (fakeIncidents) Submit(_ context.Context, _ domain.Identity, in ports.SubmitIncidentInput) (*ports.SubmitResult, error) {
	switch in.Comment {
	case "flood":
		return nil, domain.ErrRateLimited
	case "boom":
		return nil, errors.New("mongo: connection reset")
	}
	if in.ServiceID != vpn.ID {
		return nil, domain.NewValidationError("service", "select a valid service")
	}
	return &ports.SubmitResult{
		Incident: &domain.Incident{ID: "i1", Number: "INC-00C0FFEE", ServiceID: in.ServiceID, Comment: in.Comment, Status: domain.StatusNew, CreatedAt: time.Now()},
		Service:  &domain.Service{ID: vpn.ID, Name: vpn.Name},
	}, nil
}

func (fakeIncidents) List(context.Context, domain.Identity, ports.IncidentFilter) ([]ports.IncidentView, error) {
	return nil, nil
}

func (fakeIncidents) Get(_ context.Context, _ domain.Identity, id string) (*ports.IncidentDetail, error) {
	if id != "i1" {
		return nil, domain.ErrIncidentNotFound
	}
	return &ports.IncidentDetail{Incident: ports.IncidentView{ID: id, Status: domain.StatusNew}}, nil
}

func (fakeIncidents) ChangeStatus(_ context.Context, who domain.Identity, id, status string) (*domain.Incident, error) {
	if err := policy.Authorize(who, policy.ResourceIncident, policy.ActionChangeStatus); err != nil {
		return nil, err
	}
	s, err := domain.ParseIncidentStatus(status)
	if err != nil {
		return nil, err
	}
	return &domain.Incident{ID: id, Status: s}, nil
}

func (fakeIncidents) Assign(_ context.Context, _ domain.Identity, id, _ string) (*domain.Incident, error) {
	return &domain.Incident{ID: id}, nil
}

func (fakeIncidents) Dashboard(_ context.Context, who domain.Identity) (policy.Flags, error) {
	return policy.Capabilities(who), nil
}

type fakeMessages struct{}

func (fakeMessages) Contacts(context.Context, domain.Identity) ([]ports.UserRef, error) {
	return nil, nil
}

func (fakeMessages) Room(context.Context, domain.Identity, string) (*ports.ChatRoom, error) {
	return nil, domain.ErrUserNotFound
}

func (fakeMessages) Conversation(context.Context, domain.Identity, string) ([]ports.MessageView, error) {
	return []ports.MessageView{}, nil
}

func (fakeMessages) Send(_ context.Context, _ domain.Identity, _, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "text is required")
	}
	return &domain.Message{Text: text}, nil
}

func newTestRouter() *echo.Echo {
	return NewRouter(Deps{
		Auth:      fakeAuth{},
		Catalog:   fakeCatalog{},
		Incidents: fakeIncidents{},
		Messages:  fakeMessages{},
		Checks: map[string]handler.Check{
			"mongo": func(context.Context) error { return nil },
		},
		Logger:   zerolog.Nop(),
		Registry: prometheus.NewRegistry(),
	})
}

func do(e *echo.Echo, method, target, token string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error envelope %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestRouter_StatusMapping(t *testing.T) {
	e := newTestRouter()
	incident := "/itsm/incidents/i1/"

	tests := []struct {
		name      string
		method    string
		target    string
		token     string
		form      url.Values
		wantCode  int
		wantField string
	}{
		{"public catalog", http.MethodGet, "/", "", nil, http.StatusOK, ""},
		{"request form", http.MethodGet, "/request/", "", nil, http.StatusOK, ""},
		{"anonymous submit", http.MethodPost, "/request/", "", url.Values{"service": {vpn.ID}, "comment": {"no vpn"}}, http.StatusCreated, ""},
		{"submit with bad token stays anonymous", http.MethodPost, "/request/", "forged", url.Values{"service": {vpn.ID}, "comment": {"no vpn"}}, http.StatusCreated, ""},
		{"submit missing comment", http.MethodPost, "/request/", "", url.Values{"service": {vpn.ID}}, http.StatusUnprocessableEntity, "comment"},
		{"submit unknown service", http.MethodPost, "/request/", "", url.Values{"service": {"nope"}, "comment": {"x"}}, http.StatusUnprocessableEntity, "service"},
		{"submit rate limited", http.MethodPost, "/request/", "", url.Values{"service": {vpn.ID}, "comment": {"flood"}}, http.StatusTooManyRequests, ""},
		{"submit unexpected failure", http.MethodPost, "/request/", "", url.Values{"service": {vpn.ID}, "comment": {"boom"}}, http.StatusInternalServerError, ""},
		{"workers login", http.MethodGet, "/workers-login/", "", nil, http.StatusFound, ""},
		{"bad credentials", http.MethodPost, "/accounts/login/", "", url.Values{"username": {"x"}, "password": {"y"}}, http.StatusUnauthorized, ""},
		{"dashboard anonymous", http.MethodGet, "/itsm/", "", nil, http.StatusUnauthorized, ""},
		{"dashboard forged token", http.MethodGet, "/itsm/", "forged", nil, http.StatusUnauthorized, ""},
		{"dashboard employee", http.MethodGet, "/itsm/", "employee-token", nil, http.StatusOK, ""},
		{"incident missing", http.MethodGet, "/itsm/incidents/zzz/", "tech-token", nil, http.StatusNotFound, ""},
		{"employee changes status", http.MethodPost, incident, "employee-token", url.Values{"action": {"status"}, "status": {"done"}}, http.StatusForbidden, ""},
		{"tech changes status", http.MethodPost, incident, "tech-token", url.Values{"action": {"status"}, "status": {"done"}}, http.StatusOK, ""},
		{"unknown status", http.MethodPost, incident, "admin-token", url.Values{"action": {"status"}, "status": {"reopened"}}, http.StatusUnprocessableEntity, "status"},
		{"services list for tech", http.MethodGet, "/itsm/services/", "tech-token", nil, http.StatusOK, ""},
		{"tech creates service", http.MethodPost, "/itsm/services/create/", "tech-token", url.Values{"name": {"x"}, "price": {"1"}}, http.StatusForbidden, ""},
		{"employee creates service", http.MethodPost, "/itsm/services/create/", "employee-token", url.Values{"name": {"x"}, "price": {"1"}}, http.StatusCreated, ""},
		{"delete preview", http.MethodGet, "/itsm/services/" + vpn.ID + "/delete/", "admin-token", nil, http.StatusOK, ""},
		{"edit missing service", http.MethodGet, "/itsm/services/zzz/edit/", "admin-token", nil, http.StatusNotFound, ""},
		{"chat anonymous", http.MethodGet, "/chat/", "", nil, http.StatusUnauthorized, ""},
		{"chat unknown peer", http.MethodGet, "/chat/zzz/", "tech-token", nil, http.StatusNotFound, ""},
		{"messages", http.MethodGet, "/api/messages/65f1c0ffee00000000000001/", "tech-token", nil, http.StatusOK, ""},
		{"logout anonymous", http.MethodPost, "/logout/", "", nil, http.StatusUnauthorized, ""},
		{"logout", http.MethodPost, "/logout/", "tech-token", nil, http.StatusNoContent, ""},
		{"liveness", http.MethodGet, "/health", "", nil, http.StatusOK, ""},
		{"readiness", http.MethodGet, "/health/ready", "", nil, http.StatusOK, ""},
		{"metrics", http.MethodGet, "/metrics", "", nil, http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, tc.method, tc.target, tc.token, tc.form)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, rec.Code, rec.Body.String())
			}
			if tc.wantCode >= 400 {
				resp := decodeError(t, rec)
				if resp.Error == "" {
					t.Fatalf("expected an error message")
				}
				if resp.Field != tc.wantField {
					t.Fatalf("expected field %q, got %q", tc.wantField, resp.Field)
				}
			}
		})
	}
}

func TestRouter_UnexpectedErrorsAreNotLeaked(t *testing.T) {
	rec := do(newTestRouter(), http.MethodPost, "/request/", "", url.Values{"service": {vpn.ID}, "comment": {"boom"}})
	if resp := decodeError(t, rec); resp.Error != "internal server error" {
		t.Fatalf("expected generic message, got %q", resp.Error)
	}
}

func TestRouter_CookieAuth(t *testing.T) {
	e := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/itsm/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "admin-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with cookie auth, got %d", rec.Code)
	}
}

func TestRouter_SendEnvelope(t *testing.T) {
	e := newTestRouter()

	rec := do(e, http.MethodPost, "/api/messages/send/", "tech-token", url.Values{"receiver_id": {"65f1c0ffee00000000000001"}, "text": {"  "}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "error" || resp["error"] == "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}

	rec = do(e, http.MethodPost, "/api/messages/send/", "tech-token", url.Values{"receiver_id": {"65f1c0ffee00000000000001"}, "text": {"hi"}})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected send response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_HeadErrorHasNoBody(t *testing.T) {
	rec := do(newTestRouter(), http.MethodHead, "/nowhere", "", nil)
	if rec.Code != http.StatusNotFound || rec.Body.Len() != 0 {
		t.Fatalf("expected bodiless 404, got %d %q", rec.Code, rec.Body.String())
	}
}
