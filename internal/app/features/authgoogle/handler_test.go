package authgoogle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/serenity-app/serenity-admin/internal/app/system/adminlist"
	"go.uber.org/zap"
)

func newHandler() *Handler {
	return NewHandler(
		adminlist.New([]string{"ops@serenity.app"}),
		nil,
		"client-id", "client-secret",
		"https://admin.serenity.app",
		"https://app.serenity.app",
		zap.NewNop(),
	)
}

func TestServeLoginRedirectsToGoogle(t *testing.T) {
	h := newHandler()
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, httptest.NewRequest(http.MethodGet, "/auth/google", nil))

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("Location = %q, want Google consent URL", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("Location = %q, missing state parameter", loc)
	}

	var stateSet bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == stateCookie && c.Value != "" {
			stateSet = true
		}
	}
	if !stateSet {
		t.Error("state cookie not set")
	}
}

func TestServeLoginUnconfigured(t *testing.T) {
	h := newHandler()
	h.ClientID = ""
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, httptest.NewRequest(http.MethodGet, "/auth/google", nil))

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotImplemented)
	}
}

func TestServeCallbackStateMismatch(t *testing.T) {
	h := newHandler()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=forged&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "genuine"})
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=invalid_state") {
		t.Errorf("Location = %q, want invalid_state error", loc)
	}
}

func TestServeCallbackMissingStateCookie(t *testing.T) {
	h := newHandler()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=abc&code=abc", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=invalid_state") {
		t.Errorf("Location = %q, want invalid_state error", loc)
	}
}

func TestServeCallbackProviderError(t *testing.T) {
	h := newHandler()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=google_denied") {
		t.Errorf("Location = %q, want google_denied error", loc)
	}
}
