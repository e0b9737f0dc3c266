package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"asabig-talent-platform/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	var called bool
	handler := RequireRole(entity.RoleIDScout, entity.RoleIDAcademy)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDScout))

	if !called {
		t.Fatal("handler should have been called for an allowed role")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	var called bool
	handler := RequireRole(entity.RoleIDAdmin)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDPlayer))

	if called {
		t.Fatal("handler must not run for a forbidden role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoleRejectsMissingRoleContext(t *testing.T) {
	var called bool
	handler := RequireRole(entity.RoleIDAdmin)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if called {
		t.Fatal("handler must not run without role context")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireStaffCoversManagementRoles(t *testing.T) {
	cases := map[int]int{
		entity.RoleIDAdmin:   http.StatusOK,
		entity.RoleIDScout:   http.StatusOK,
		entity.RoleIDAcademy: http.StatusOK,
		entity.RoleIDParent:  http.StatusForbidden,
		entity.RoleIDPlayer:  http.StatusForbidden,
	}

	for roleID, want := range cases {
		var called bool
		rec := httptest.NewRecorder()
		RequireStaff(okHandler(&called)).ServeHTTP(rec, requestWithRole(roleID))
		if rec.Code != want {
			t.Errorf("role %d: expected %d, got %d", roleID, want, rec.Code)
		}
	}
}
