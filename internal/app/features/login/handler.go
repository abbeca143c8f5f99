// internal/app/features/login/handler.go
package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/store/audit"
	"github.com/serenity-app/serenity-admin/internal/app/system/adminlist"
	"github.com/serenity-app/serenity-admin/internal/app/system/auditlog"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
	"github.com/serenity-app/serenity-admin/internal/app/system/timeouts"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminGetter is the slice of the admin-user store the handler needs.
type AdminGetter interface {
	GetByEmail(ctx context.Context, email string) (models.AdminUser, error)
}

type Handler struct {
	Admins   AdminGetter
	Allowed  *adminlist.List
	AuditLog *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(admins AdminGetter, allowed *adminlist.List, auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Admins:   admins,
		Allowed:  allowed,
		AuditLog: auditLog,
		ErrLog:   uierrors.NewErrorLogger(logger),
		Log:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Admin adminInfo `json:"admin"`
}

type adminInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Method string `json:"method"`
}

// Login handles POST /login.
//
// Credentials are checked first, then the allow-list. A valid password for
// an email outside the allow-list is a hard stop: the gate failure is
// reported as 403 and never establishes a session. Credential failures all
// share one client-facing message so the response does not reveal whether
// an account exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid request body.", err)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		uierrors.Render(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	ip := auditlog.ClientIP(r)

	account, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.AuditLog.Log(ctx, audit.Event{
				Category:      audit.CategoryAuth,
				EventType:     audit.EventLoginFailedUserNotFound,
				ActorEmail:    req.Email,
				IP:            ip,
				Success:       false,
				FailureReason: "no admin account for email",
			})
			uierrors.Render(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		h.ErrLog.Internal(w, "Sign-in is temporarily unavailable.", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		h.AuditLog.Log(ctx, audit.Event{
			Category:      audit.CategoryAuth,
			EventType:     audit.EventLoginFailedWrongPassword,
			ActorEmail:    account.Email,
			IP:            ip,
			Success:       false,
			FailureReason: "password mismatch",
		})
		uierrors.Render(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if !h.Allowed.Allowed(account.Email) {
		h.AuditLog.Log(ctx, audit.Event{
			Category:      audit.CategoryAuth,
			EventType:     audit.EventLoginFailedUnauthorizedEmail,
			ActorEmail:    account.Email,
			IP:            ip,
			Success:       false,
			FailureReason: "email not on admin allow-list",
		})
		uierrors.RenderForbidden(w, "Access denied. Admin privileges required.")
		return
	}

	admin := &auth.SessionAdmin{
		ID:     account.ID.Hex(),
		Name:   account.Name,
		Email:  account.Email,
		Method: "password",
	}
	if err := auth.EstablishSession(w, r, admin); err != nil {
		h.ErrLog.Internal(w, "Could not establish session.", err)
		return
	}

	h.AuditLog.Log(ctx, audit.Event{
		Category:   audit.CategoryAuth,
		EventType:  audit.EventLoginSuccess,
		ActorEmail: account.Email,
		IP:         ip,
		Success:    true,
		Details:    map[string]string{"method": "password"},
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{Admin: adminInfo{
		ID:     admin.ID,
		Name:   admin.Name,
		Email:  admin.Email,
		Method: admin.Method,
	}})
}
