package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
)

type stubStatsService struct {
	activeFn func(ctx context.Context) (*domain.ActiveCounts, error)
	rolesFn  func(ctx context.Context) ([]domain.RoleCount, error)
	regsFn   func(ctx context.Context) ([]domain.MonthlyRegistration, error)
}

func (s *stubStatsService) ActiveCounts(ctx context.Context) (*domain.ActiveCounts, error) {
	return s.activeFn(ctx)
}

func (s *stubStatsService) RoleDistribution(ctx context.Context) ([]domain.RoleCount, error) {
	return s.rolesFn(ctx)
}

func (s *stubStatsService) MonthlyRegistrations(ctx context.Context) ([]domain.MonthlyRegistration, error) {
	return s.regsFn(ctx)
}

var statsDown = &ports.UpstreamError{Message: "backend down"}

func TestStatsHandler_ActiveRelay(t *testing.T) {
	h := NewStatsHandler(&stubStatsService{
		activeFn: func(ctx context.Context) (*domain.ActiveCounts, error) {
			return &domain.ActiveCounts{Active: 5, Inactive: 2, Total: 7}, nil
		},
	})

	rec := doJSON(t, h.Active, http.MethodGet, "/stats/active", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var counts domain.ActiveCounts
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if counts.Active != 5 || counts.Inactive != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestStatsHandler_ActiveFailureZeroedBody(t *testing.T) {
	h := NewStatsHandler(&stubStatsService{
		activeFn: func(ctx context.Context) (*domain.ActiveCounts, error) {
			return nil, statsDown
		},
	})

	rec := doJSON(t, h.Active, http.MethodGet, "/stats/active", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["active"] != float64(0) || resp["inactive"] != float64(0) || resp["total"] != float64(0) {
		t.Fatalf("expected zeroed counts, got %v", resp)
	}
	if resp["message"] == "" {
		t.Fatalf("missing message: %v", resp)
	}
}

func TestStatsHandler_RolesFailureEmptyArray(t *testing.T) {
	h := NewStatsHandler(&stubStatsService{
		rolesFn: func(ctx context.Context) ([]domain.RoleCount, error) {
			return nil, statsDown
		},
	})

	rec := doJSON(t, h.Roles, http.MethodGet, "/stats/roles", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty array body, got %q", body)
	}
}

func TestStatsHandler_RegistrationsRelay(t *testing.T) {
	h := NewStatsHandler(&stubStatsService{
		regsFn: func(ctx context.Context) ([]domain.MonthlyRegistration, error) {
			return []domain.MonthlyRegistration{{Year: 2026, Month: 3, Count: 5}}, nil
		},
	})

	rec := doJSON(t, h.Registrations, http.MethodGet, "/stats/registration", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var regs []domain.MonthlyRegistration
	if err := json.Unmarshal(rec.Body.Bytes(), &regs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(regs) != 1 || regs[0].Month != 3 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestStatsHandler_RegistrationsFailureEmptyArray(t *testing.T) {
	h := NewStatsHandler(&stubStatsService{
		regsFn: func(ctx context.Context) ([]domain.MonthlyRegistration, error) {
			return nil, statsDown
		},
	})

	rec := doJSON(t, h.Registrations, http.MethodGet, "/stats/registration", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty array body, got %q", body)
	}
}

type stubRoleService struct {
	listFn func(ctx context.Context) ([]domain.Role, error)
}

func (s *stubRoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.listFn(ctx)
}

func TestRoleHandler_List(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{
		listFn: func(ctx context.Context) ([]domain.Role, error) {
			return []domain.Role{{ID: 1, Name: "Admin", Description: "Full access"}}, nil
		},
	})

	rec := doJSON(t, h.List, http.MethodGet, "/roles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var roles []domain.Role
	if err := json.Unmarshal(rec.Body.Bytes(), &roles); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(roles) != 1 || roles[0].Name != "Admin" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoleHandler_ListFailureEmptyArray(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{
		listFn: func(ctx context.Context) ([]domain.Role, error) {
			return nil, statsDown
		},
	})

	rec := doJSON(t, h.List, http.MethodGet, "/roles", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty array body, got %q", body)
	}
}
