// internal/app/system/fireauth/fireauth.go
//
// Package fireauth verifies Firebase ID tokens presented as Bearer
// credentials. It is an optional second front door for admins who sign in
// through the wellness app's own Firebase project; cookie sessions remain
// the primary mechanism.
package fireauth

import (
	"context"
	"net/http"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/serenity-app/serenity-admin/internal/app/system/adminlist"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
)

// tokenVerifier lets tests stand in for the Firebase auth client.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// Verifier checks Bearer tokens against Firebase and the admin allow-list.
type Verifier struct {
	client tokenVerifier
	admins *adminlist.List
	log    *zap.Logger
}

// New builds a Verifier from service-account credentials JSON. Returns nil
// with no error when credentialsJSON is empty: Firebase auth is simply not
// configured, which is not a startup failure.
func New(ctx context.Context, credentialsJSON string, admins *adminlist.List, logger *zap.Logger) (*Verifier, error) {
	if credentialsJSON == "" {
		return nil, nil
	}

	opt := option.WithCredentialsJSON([]byte(credentialsJSON))
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := app.Auth(initCtx)
	if err != nil {
		return nil, err
	}

	return &Verifier{client: client, admins: admins, log: logger}, nil
}

// Middleware attaches a session admin to the request context when a valid
// Bearer token for an allow-listed email is presented. Requests without a
// Bearer header pass through untouched so cookie sessions still work; a
// present-but-bad token also passes through and lets the session layer
// reject the request.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idToken, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		verifyCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		token, err := v.client.VerifyIDToken(verifyCtx, idToken)
		cancel()
		if err != nil {
			v.log.Debug("firebase token rejected", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		email, _ := token.Claims["email"].(string)
		if !v.admins.Allowed(email) {
			v.log.Warn("firebase token for non-admin email",
				zap.String("email", email))
			next.ServeHTTP(w, r)
			return
		}

		name, _ := token.Claims["name"].(string)
		admin := &auth.SessionAdmin{
			ID:     token.UID,
			Name:   name,
			Email:  email,
			Method: "firebase",
		}
		next.ServeHTTP(w, r.WithContext(auth.WithAdmin(r.Context(), admin)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
