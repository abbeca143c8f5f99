// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/store/audit"
	"github.com/serenity-app/serenity-admin/internal/app/system/adminlist"
	"github.com/serenity-app/serenity-admin/internal/app/system/auditlog"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookie = "oauth_state"
	stateTTL    = 10 * time.Minute
)

// Handler handles Google OAuth sign-in for admins. Unlike password
// sign-in there is no admin account record to check; the allow-list is
// the only gate between a verified Google identity and a session.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Allowed  *adminlist.List

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g. "https://admin.serenity.app/auth/google/callback"
	FrontendURL  string // where the browser lands after the OAuth dance

	// userInfoURL is swapped out in tests.
	userInfoURL string
}

// NewHandler creates a new Google OAuth handler.
func NewHandler(allowed *adminlist.List, auditLog *auditlog.Logger, clientID, clientSecret, baseURL, frontendURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Log:          logger,
		ErrLog:       uierrors.NewErrorLogger(logger),
		AuditLog:     auditLog,
		Allowed:      allowed,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
		FrontendURL:  frontendURL,
		userInfoURL:  "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google                                                             |
| Initiates the Google OAuth flow by redirecting to Google's consent screen.   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		uierrors.Render(w, http.StatusNotImplemented, "Google sign-in is not configured.")
		return
	}

	state := base64.URLEncoding.EncodeToString(securecookie.GenerateRandomKey(32))

	// the callback compares its state query param against this cookie
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	url := h.oauth2Config().AuthCodeURL(state, oauth2.AccessTypeOnline)
	h.Log.Debug("initiating Google OAuth flow", zap.String("redirect_url", url))
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google/callback                                                    |
| Exchanges the code, fetches the Google identity, gates it on the admin       |
| allow-list, and establishes the session.                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Google OAuth error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		h.redirectWithError(w, r, "google_denied")
		return
	}

	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if state == "" || err != nil || cookie.Value != state {
		h.Log.Warn("invalid or expired OAuth state")
		h.redirectWithError(w, r, "invalid_state")
		return
	}
	clearStateCookie(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Log.Warn("missing OAuth code parameter")
		h.redirectWithError(w, r, "invalid_code")
		return
	}

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("failed to exchange OAuth code", zap.Error(err))
		h.redirectWithError(w, r, "token_exchange")
		return
	}

	googleUser, err := h.fetchGoogleUserInfo(ctx, token)
	if err != nil {
		h.Log.Error("failed to fetch Google user info", zap.Error(err))
		h.redirectWithError(w, r, "user_info")
		return
	}

	ip := auditlog.ClientIP(r)

	if !h.Allowed.Allowed(googleUser.Email) {
		h.AuditLog.Log(ctx, audit.Event{
			Category:      audit.CategoryAuth,
			EventType:     audit.EventLoginFailedUnauthorizedEmail,
			ActorEmail:    googleUser.Email,
			IP:            ip,
			Success:       false,
			FailureReason: "email not on admin allow-list",
			Details:       map[string]string{"method": "google"},
		})
		h.redirectWithError(w, r, "access_denied")
		return
	}

	admin := &auth.SessionAdmin{
		ID:     googleUser.ID,
		Name:   googleUser.Name,
		Email:  googleUser.Email,
		Method: "google",
	}
	if err := auth.EstablishSession(w, r, admin); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("email", googleUser.Email))
		h.redirectWithError(w, r, "session")
		return
	}

	h.AuditLog.Log(ctx, audit.Event{
		Category:   audit.CategoryAuth,
		EventType:  audit.EventLoginSuccess,
		ActorEmail: googleUser.Email,
		IP:         ip,
		Success:    true,
		Details:    map[string]string{"method": "google"},
	})
	h.Log.Info("admin signed in via Google OAuth", zap.String("email", googleUser.Email))

	http.Redirect(w, r, h.FrontendURL+"/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// fetchGoogleUserInfo retrieves user information from Google's userinfo endpoint.
func (h *Handler) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}

func (h *Handler) redirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.FrontendURL+"/login?error="+code, http.StatusSeeOther)
}

func clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
