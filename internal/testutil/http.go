package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestAdmin returns a session admin for handler tests.
func TestAdmin() *auth.SessionAdmin {
	return &auth.SessionAdmin{
		ID:     "test-admin-id",
		Name:   "Test Admin",
		Email:  "admin@serenity.app",
		Method: "password",
	}
}

// NewAuthenticatedRequest builds a request carrying a signed-in admin,
// bypassing the session middleware.
func NewAuthenticatedRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	return auth.WithTestUser(r, TestAdmin())
}
