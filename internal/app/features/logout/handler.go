// internal/app/features/logout/handler.go
package logout

import (
	"encoding/json"
	"net/http"

	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/store/audit"
	"github.com/serenity-app/serenity-admin/internal/app/system/auditlog"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	AuditLog *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
}

func NewHandler(auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		AuditLog: auditLog,
		ErrLog:   uierrors.NewErrorLogger(logger),
	}
}

// Logout handles POST /logout. Clearing an already-absent session is fine;
// the endpoint is idempotent.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var email string
	if admin, ok := auth.CurrentAdmin(r); ok {
		email = admin.Email
	}

	if err := auth.ClearSession(w, r); err != nil {
		h.ErrLog.Internal(w, "Could not clear session.", err)
		return
	}

	if email != "" {
		h.AuditLog.Log(r.Context(), audit.Event{
			Category:   audit.CategoryAuth,
			EventType:  audit.EventLogout,
			ActorEmail: email,
			IP:         auditlog.ClientIP(r),
			Success:    true,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "signed_out"})
}
