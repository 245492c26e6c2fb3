package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

func TestHealthHandler_Liveness(t *testing.T) {
	e := newEcho()
	c, rec := newFormContext(e, http.MethodGet, "/health", nil, domain.Anonymous())

	if err := NewHealthHandler(nil).Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]Check
		wantCode   int
		wantStatus string
	}{
		{"all healthy", map[string]Check{"mongo": ok, "redis": ok}, http.StatusOK, "ok"},
		{"redis down", map[string]Check{"mongo": ok, "redis": down}, http.StatusServiceUnavailable, "degraded"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho()
			c, rec := newFormContext(e, http.MethodGet, "/health/ready", nil, domain.Anonymous())

			if err := NewHealthHandler(tc.checks).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tc.wantStatus || len(resp.Dependencies) != 2 {
				t.Fatalf("unexpected readiness: %+v", resp)
			}
			if tc.wantCode != http.StatusOK && resp.Dependencies["redis"].Error != "connection refused" {
				t.Fatalf("expected redis error to be reported, got %+v", resp.Dependencies["redis"])
			}
		})
	}
}
