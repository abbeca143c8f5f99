package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin_NoSession(t *testing.T) {
	req := httptest.NewRequest("GET", "/users", nil)
	rec := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q, want application/json", ct)
	}
}

func TestRequireAdmin_WithAdmin(t *testing.T) {
	req := httptest.NewRequest("GET", "/users", nil)
	req = WithTestUser(req, &SessionAdmin{ID: "a1", Name: "Test Admin", Email: "admin@serenity.app"})
	rec := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCurrentAdmin(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := CurrentAdmin(req); ok {
		t.Error("expected no admin on a bare request")
	}

	admin := &SessionAdmin{ID: "a1", Email: "admin@serenity.app", Method: "google"}
	req = WithTestUser(req, admin)
	got, ok := CurrentAdmin(req)
	if !ok {
		t.Fatal("expected admin in context")
	}
	if got.Email != admin.Email || got.Method != "google" {
		t.Errorf("CurrentAdmin = %+v, want %+v", got, admin)
	}
}

func TestInitSessionStore_EmptyKey(t *testing.T) {
	if err := InitSessionStore("", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	if err := InitSessionStore("0123456789abcdef0123456789abcdef", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}
	t.Cleanup(func() { Store = nil })

	admin := &SessionAdmin{ID: "a1", Name: "Test Admin", Email: "admin@serenity.app", Method: "password"}

	// Establish the session and capture the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	if err := EstablishSession(rec, req, admin); err != nil {
		t.Fatalf("EstablishSession failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie written")
	}

	// Replay the cookie through the middleware.
	req2 := httptest.NewRequest("GET", "/users", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	var loaded *SessionAdmin
	LoadSessionAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loaded, _ = CurrentAdmin(r)
	})).ServeHTTP(httptest.NewRecorder(), req2)

	if loaded == nil {
		t.Fatal("middleware did not load the session admin")
	}
	if loaded.Email != admin.Email || loaded.Method != admin.Method {
		t.Errorf("loaded admin = %+v, want %+v", loaded, admin)
	}
}
