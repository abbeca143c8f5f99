package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants & globals                                                |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	SessionName = "serenity-admin-session"

	isAuthKey    = "is_authenticated"
	adminIDKey   = "admin_id"
	adminName    = "admin_name"
	adminEmail   = "admin_email"
	adminMethod  = "admin_auth_method"
)

// Store is initialised once via InitSessionStore.
var Store *sessions.CookieStore

/*─────────────────────────────────────────────────────────────────────────────*
| Current-Admin helper                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionAdmin is what we cache in the session & inject into r.Context().
// Every signed-in principal is an admin; the allow-list gate runs before a
// session is ever established.
type SessionAdmin struct {
	ID     string
	Name   string
	Email  string
	Method string // "password" | "google" | "firebase"
}

type ctxKey string

const currentAdminKey ctxKey = "currentAdmin"

// CurrentAdmin returns the signed-in admin & "found?" flag.
func CurrentAdmin(r *http.Request) (*SessionAdmin, bool) {
	a, ok := r.Context().Value(currentAdminKey).(*SessionAdmin)
	return a, ok
}

// LoadSessionAdmin injects the admin into context if they are signed in.
// If the session store has not been initialized yet, it is a no-op.
func LoadSessionAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Store == nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, _ := Store.Get(r, SessionName)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			a := &SessionAdmin{
				ID:     getString(sess, adminIDKey),
				Name:   getString(sess, adminName),
				Email:  getString(sess, adminEmail),
				Method: getString(sess, adminMethod),
			}
			r = withAdmin(r, a)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures there is a signed-in admin in context (set by
// LoadSessionAdmin or a bearer-token verifier). API callers get a plain
// 401 JSON body; there are no HTML redirects in this service.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentAdmin(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| Session lifecycle                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// EstablishSession writes an authenticated session cookie for the admin.
func EstablishSession(w http.ResponseWriter, r *http.Request, a *SessionAdmin) error {
	if Store == nil {
		return fmt.Errorf("session store not initialized")
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Values[isAuthKey] = true
	sess.Values[adminIDKey] = a.ID
	sess.Values[adminName] = a.Name
	sess.Values[adminEmail] = a.Email
	sess.Values[adminMethod] = a.Method
	return sess.Save(r, w)
}

// ClearSession removes the session cookie.
func ClearSession(w http.ResponseWriter, r *http.Request) error {
	if Store == nil {
		return nil
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// InitSessionStore initializes the global session Store using the provided
// session key and domain. The `secure` flag controls whether cookies are
// marked Secure and which SameSite mode is used.
//
// In production (secure=true), cookies are Secure + SameSite=None so the
// dashboard SPA can call the API cross-site over HTTPS. In local dev over
// http://localhost, use secure=false so cookies are accepted.
func InitSessionStore(sessionKey, domain string, secure bool, logger *zap.Logger) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}

	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}

	store.Options = opts
	Store = store

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return nil
}

// WithTestUser injects an admin into the request context directly,
// bypassing the session middleware. Test-only.
func WithTestUser(r *http.Request, a *SessionAdmin) *http.Request {
	return withAdmin(r, a)
}

// WithAdmin returns a copy of ctx carrying the admin. Used by bearer-token
// middleware that authenticates outside the cookie session.
func WithAdmin(ctx context.Context, a *SessionAdmin) context.Context {
	return context.WithValue(ctx, currentAdminKey, a)
}

// helpers

func withAdmin(r *http.Request, a *SessionAdmin) *http.Request {
	return r.WithContext(WithAdmin(r.Context(), a))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
